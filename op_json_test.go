package delta

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/signadot/delta/attr"
	"github.com/signadot/delta/ir"
)

func TestMarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   Delta
		want string
	}{
		{"nil", nil, `[]`},
		{"insert", New(InsertOp("Hello", nil)), `[{"insert":"Hello"}]`},
		{"insert attributes", New(InsertOp("Hi", attr.Map{"color": ir.FromString("red"), "bold": ir.FromBool(true)})), `[{"insert":"Hi","attributes":{"bold":true,"color":"red"}}]`},
		{"empty attributes omitted", Delta{InsertOp("Hi", attr.Map{})}, `[{"insert":"Hi"}]`},
		{"embed", New(EmbedOp(image("a.png"), nil)), `[{"insert":{"image":"a.png"}}]`},
		{"number embed", New(EmbedOp(ir.FromInt(2), nil)), `[{"insert":2}]`},
		{"retain", New(RetainOp(3, attr.Map{"bold": ir.Null()})), `[{"retain":3,"attributes":{"bold":null}}]`},
		{"delete", New(DeleteOp(4)), `[{"delete":4}]`},
		{"escapes", New(InsertOp("a\"\n", nil)), `[{"insert":"a\"\n"}]`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := json.Marshal(c.in)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != c.want {
				t.Errorf("got %s want %s", got, c.want)
			}
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Delta
	}{
		{"empty", `[]`, nil},
		{"insert", `[{"insert":"Hello"}]`, Delta{InsertOp("Hello", nil)}},
		{"key order", `[{"attributes":{"bold":true},"insert":"Hello"}]`, Delta{InsertOp("Hello", bold())}},
		{"null attributes", `[{"insert":"Hello","attributes":null}]`, Delta{InsertOp("Hello", nil)}},
		{"empty attributes", `[{"insert":"Hello","attributes":{}}]`, Delta{InsertOp("Hello", nil)}},
		{"embed", `[{"insert":{"image":"a.png"},"attributes":{"width":"20"}}]`, Delta{EmbedOp(image("a.png"), attr.Map{"width": ir.FromString("20")})}},
		{"scalar embed", `[{"insert":true}]`, Delta{EmbedOp(ir.FromBool(true), nil)}},
		{"retain", `[{"retain":3,"attributes":{"bold":null}}]`, Delta{RetainOp(3, attr.Map{"bold": ir.Null()})}},
		{"delete ignores attributes", `[{"delete":3,"attributes":{"bold":true}}]`, Delta{DeleteOp(3)}},
		{"zero lengths dropped", `[{"retain":0},{"insert":""},{"delete":0},{"insert":"a"}]`, Delta{InsertOp("a", nil)}},
		{"normalized", `[{"insert":"a"},{"delete":1},{"insert":"b"}]`, Delta{InsertOp("ab", nil), DeleteOp(1)}},
		{"unknown keys", `[{"insert":"a","x":1}]`, Delta{InsertOp("a", nil)}},
		{"escaped pair", `[{"insert":"\ud83d\ude00\n"}]`, Delta{InsertOp("😀\n", nil)}},
		{"split pair rejoined", `[{"insert":"a\ud83d"},{"insert":"\uDE00b"}]`, Delta{InsertOp("a😀b", nil)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got Delta
			if err := json.Unmarshal([]byte(c.in), &got); err != nil {
				t.Fatal(err)
			}
			checkDelta(t, got, c.want)
		})
	}
}

func TestUnmarshalJSONErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"no kind", `[{"attributes":{"bold":true}}]`},
		{"two kinds", `[{"insert":"a","delete":1}]`},
		{"null insert", `[{"insert":null}]`},
		{"negative", `[{"retain":-1}]`},
		{"fractional", `[{"delete":1.5}]`},
		{"string length", `[{"retain":"3"}]`},
		{"bad attributes", `[{"insert":"a","attributes":[1]}]`},
		{"not an object", `[3]`},
		{"null op", `[null]`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got Delta
			err := json.Unmarshal([]byte(c.in), &got)
			if !errors.Is(err, ErrBadOp) {
				t.Errorf("expected ErrBadOp, got %v", err)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(InsertOp("Hé😀\n", bold()), EmbedOp(image("x"), color("red")), RetainOp(2, attr.Map{"font": ir.Null()}), DeleteOp(1))
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	var got Delta
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	checkDelta(t, got, d)
	if got.String() != string(data) {
		t.Errorf("String() = %s want %s", got.String(), data)
	}
}

func TestJSONSplitPair(t *testing.T) {
	d := Compose(New(InsertOp("a😀b", nil)), New(RetainOp(2, bold())))
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"insert":"a\ud83d","attributes":{"bold":true}},{"insert":"\ude00b"}]`
	if string(data) != want {
		t.Errorf("got %s want %s", data, want)
	}
	var got Delta
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	checkDelta(t, got, d)
	unbold := New(RetainOp(2, attr.Map{"bold": ir.Null()}))
	checkDelta(t, Compose(got, unbold), New(InsertOp("a😀b", nil)))
}

func TestKindText(t *testing.T) {
	for _, k := range []Kind{InsertKind, RetainKind, DeleteKind} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("got %s want %s", back, k)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("move")); !errors.Is(err, ErrBadOp) {
		t.Errorf("expected ErrBadOp, got %v", err)
	}
}
