package delta

import (
	"math/rand/v2"
	"testing"

	"github.com/signadot/delta/attr"
	"github.com/signadot/delta/ir"
)

func TestCompose(t *testing.T) {
	formats := attr.Map{"bold": ir.FromBool(true), "color": ir.FromString("red"), "font": ir.Null()}
	formatted := attr.Map{"bold": ir.FromBool(true), "color": ir.FromString("red")}
	cases := []struct {
		name string
		a, b Delta
		want Delta
	}{
		{"insert insert", New(InsertOp("A", nil)), New(InsertOp("B", nil)), Delta{InsertOp("BA", nil)}},
		{"insert retain", New(InsertOp("A", nil)), New(RetainOp(1, formats)), Delta{InsertOp("A", formatted)}},
		{"insert delete", New(InsertOp("A", nil)), New(DeleteOp(1)), nil},
		{"delete insert", New(DeleteOp(1)), New(InsertOp("B", nil)), Delta{InsertOp("B", nil), DeleteOp(1)}},
		{"delete retain", New(DeleteOp(1)), New(RetainOp(1, formatted)), Delta{DeleteOp(1), RetainOp(1, formatted)}},
		{"delete delete", New(DeleteOp(1)), New(DeleteOp(1)), Delta{DeleteOp(2)}},
		{"retain insert", New(RetainOp(1, color("blue"))), New(InsertOp("B", nil)), Delta{InsertOp("B", nil), RetainOp(1, color("blue"))}},
		{"retain retain", New(RetainOp(1, color("blue"))), New(RetainOp(1, formats)), Delta{RetainOp(1, formats)}},
		{"retain delete", New(RetainOp(1, color("blue"))), New(DeleteOp(1)), Delta{DeleteOp(1)}},
		{"insert in middle of text", New(InsertOp("Hello", nil)), New(RetainOp(3, nil), InsertOp("X", nil)), Delta{InsertOp("HelXlo", nil)}},
		{"insert then delete", New(InsertOp("Hello", nil)), New(RetainOp(3, nil), InsertOp("X", nil), DeleteOp(1)), Delta{InsertOp("HelXo", nil)}},
		{"delete then insert", New(InsertOp("Hello", nil)), New(RetainOp(3, nil), DeleteOp(1), InsertOp("X", nil)), Delta{InsertOp("HelXo", nil)}},
		{"insert embed", New(EmbedOp(image("a.png"), attr.Map{"alt": ir.FromString("logo")})), New(RetainOp(1, bold())), Delta{EmbedOp(image("a.png"), attr.Map{"alt": ir.FromString("logo"), "bold": ir.FromBool(true)})}},
		{"delete entire text", New(RetainOp(4, nil), InsertOp("Hello", nil)), New(DeleteOp(9)), Delta{DeleteOp(4)}},
		{"retain past end", New(InsertOp("Hello", nil)), New(RetainOp(10, nil)), Delta{InsertOp("Hello", nil)}},
		{"retain inside pair", New(InsertOp("a😀b", nil)), New(RetainOp(2, nil)), Delta{InsertOp("a😀b", nil)}},
		{"format inside pair", New(InsertOp("a😀b", nil)), New(RetainOp(2, bold())), Delta{InsertOp("a\xed\xa0\xbd", bold()), InsertOp("\xed\xb8\x80b", nil)}},
		{"insert inside pair", New(InsertOp("😀", nil)), New(RetainOp(1, nil), InsertOp("x", nil)), Delta{InsertOp("\xed\xa0\xbdx\xed\xb8\x80", nil)}},
		{"delete half of pair", New(InsertOp("a😀b", nil)), New(RetainOp(1, nil), DeleteOp(1)), Delta{InsertOp("a\xed\xb8\x80b", nil)}},
		{"retain embed", New(EmbedOp(ir.FromInt(1), nil)), New(RetainOp(1, nil)), Delta{EmbedOp(ir.FromInt(1), nil)}},
		{"remove attributes", New(InsertOp("A", bold())), New(RetainOp(1, attr.Map{"bold": ir.Null()})), Delta{InsertOp("A", nil)}},
		{"remove embed attributes", New(EmbedOp(ir.FromInt(2), bold())), New(RetainOp(1, attr.Map{"bold": ir.Null()})), Delta{EmbedOp(ir.FromInt(2), nil)}},
		{
			"leading inserts kept",
			New(InsertOp("A", bold()), InsertOp("B", nil), InsertOp("C", bold()), DeleteOp(1)),
			New(RetainOp(3, nil), InsertOp("D", nil)),
			Delta{InsertOp("A", bold()), InsertOp("B", nil), InsertOp("C", bold()), InsertOp("D", nil), DeleteOp(1)},
		},
		{
			"leading inserts split retain",
			New(InsertOp("A", bold()), InsertOp("B", nil), InsertOp("C", bold()), RetainOp(5, nil), DeleteOp(1)),
			New(RetainOp(4, nil), InsertOp("D", nil)),
			Delta{InsertOp("A", bold()), InsertOp("B", nil), InsertOp("C", bold()), RetainOp(1, nil), InsertOp("D", nil), RetainOp(4, nil), DeleteOp(1)},
		},
		{
			"trailing rest",
			New(InsertOp("A", bold()), InsertOp("B", nil), InsertOp("C", bold())),
			New(DeleteOp(1)),
			Delta{InsertOp("B", nil), InsertOp("C", bold())},
		},
		{
			"trailing rest joined",
			New(InsertOp("A", bold()), InsertOp("B", nil), InsertOp("C", bold()), InsertOp("D", nil), InsertOp("E", bold()), InsertOp("F", nil)),
			New(RetainOp(1, nil), DeleteOp(1)),
			Delta{InsertOp("AC", bold()), InsertOp("D", nil), InsertOp("E", bold()), InsertOp("F", nil)},
		},
		{"append", New(InsertOp("Hello", nil)), New(RetainOp(5, nil), InsertOp("!", nil)), Delta{InsertOp("Hello!", nil)}},
		{"replace", New(InsertOp("Hello", nil)), New(DeleteOp(5), InsertOp("Goodbye", nil)), Delta{InsertOp("Goodbye", nil)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			checkDelta(t, Compose(c.a, c.b), c.want)
		})
	}
}

func TestComposeImmutable(t *testing.T) {
	attr1 := bold()
	attr2 := bold()
	a1 := New(InsertOp("Test", attr1))
	a2 := New(InsertOp("Test", attr1))
	b1 := New(RetainOp(1, color("red")), DeleteOp(2))
	b2 := New(RetainOp(1, color("red")), DeleteOp(2))
	want := Delta{InsertOp("T", attr.Map{"bold": ir.FromBool(true), "color": ir.FromString("red")}), InsertOp("t", bold())}
	checkDelta(t, Compose(a1, b1), want)
	checkDelta(t, a1, a2)
	checkDelta(t, b1, b2)
	if !attr.Equal(attr1, attr2) {
		t.Errorf("attributes were modified: %v", attr1)
	}
}

func TestComposeSplitPair(t *testing.T) {
	doc := New(InsertOp("a😀b", nil))
	formatted := Compose(doc, New(RetainOp(2, bold())))
	if n := formatted.Length(); n != 4 {
		t.Errorf("length %d after formatting half a pair", n)
	}
	got := Compose(formatted, New(RetainOp(4, attr.Map{"bold": ir.Null()})))
	checkDelta(t, got, doc)
	got = Compose(formatted, Invert(New(RetainOp(2, bold())), doc))
	checkDelta(t, got, doc)
}

func TestComposeIdentity(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 300; i++ {
		doc := randDoc(r, astralRunes, true)
		a := randChange(r, doc.Length(), true)
		checkDelta(t, Compose(a, nil), a)
		checkDelta(t, Compose(nil, a), a)
		checkDelta(t, Compose(doc, nil), doc)
	}
}

func TestComposeAssociative(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 300; i++ {
		doc := randDoc(r, astralRunes, true)
		a := randChange(r, doc.Length(), true)
		docA := Compose(doc, a)
		b := randChange(r, docA.Length(), true)
		got := Compose(doc, Compose(a, b))
		want := Compose(docA, b)
		if !got.Equal(want) {
			t.Fatalf("doc %s\na %s\nb %s\ngot  %s\nwant %s", doc, a, b, got, want)
		}
		if !got.IsDocument() {
			t.Fatalf("composing onto a document gave %s", got)
		}
	}
}
