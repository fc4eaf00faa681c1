package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/signadot/delta"
	"github.com/signadot/delta/attr"
	"github.com/signadot/delta/ir"
)

func sample() delta.Delta {
	d := delta.Delta{}
	d.Insert("Hello", attr.Map{"bold": ir.FromBool(true)}).
		InsertEmbed(ir.FromMap(map[string]*ir.Node{"image": ir.FromString("a.png")}), nil).
		Insert("😀x", nil).
		Retain(3, attr.Map{"color": ir.FromString("red")}).
		Delete(4)
	return d
}

func TestMatch(t *testing.T) {
	d := sample()
	tests := []struct {
		src  string
		want []bool
	}{
		{`kind == "insert"`, []bool{true, true, true, false, false}},
		{`"bold" in attributes`, []bool{true, false, false, false, false}},
		{`isEmbed && embed.image == "a.png"`, []bool{false, true, false, false, false}},
		{`length == 3`, []bool{false, false, true, true, false}},
		{`utf16len(text) == 3`, []bool{false, false, true, false, false}},
		{`attributes.color == "red"`, []bool{false, false, false, true, false}},
		{`index == 4 && offset == 12`, []bool{false, false, false, false, true}},
		{`text`, []bool{true, false, true, false, false}},
		{`attributes.missing`, []bool{false, false, false, false, false}},
		{`getenv("DELTA_EVAL_UNSET_VAR") == ""`, []bool{true, true, true, true, true}},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			p, err := Compile(tc.src)
			if err != nil {
				t.Fatal(err)
			}
			got := make([]bool, len(d))
			offset := 0
			for i, op := range d {
				got[i], err = p.Match(op, i, offset)
				if err != nil {
					t.Fatal(err)
				}
				offset += op.Len()
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	for _, src := range []string{`kind ==`, `nosuchvar > 1`, `utf16len(1)`} {
		if _, err := Compile(src); err == nil {
			t.Errorf("%q: expected error", src)
		}
	}
}

func TestNotBool(t *testing.T) {
	p, err := Compile(`now()`)
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.Match(delta.InsertOp("a", nil), 0, 0)
	if !errors.Is(err, ErrNotBool) {
		t.Errorf("expected ErrNotBool, got %v", err)
	}
}

func TestFilter(t *testing.T) {
	p, err := Compile(`kind != "insert" || !isEmbed`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Filter(sample(), p)
	if err != nil {
		t.Fatal(err)
	}
	want := delta.New(
		delta.InsertOp("Hello", attr.Map{"bold": ir.FromBool(true)}),
		delta.InsertOp("😀x", nil),
		delta.RetainOp(3, attr.Map{"color": ir.FromString("red")}),
		delta.DeleteOp(4),
	)
	opts := cmp.Options{cmp.Comparer(ir.Equal), cmpopts.EquateEmpty()}
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFilterMerges(t *testing.T) {
	d := delta.New(delta.InsertOp("ab", nil), delta.InsertOp("X", attr.Map{"bold": ir.FromBool(true)}), delta.InsertOp("cd", nil))
	p, err := Compile(`!("bold" in attributes)`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Filter(d, p)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(delta.New(delta.InsertOp("abcd", nil))) {
		t.Errorf("got %s", got)
	}
}
