package utf16x

import (
	"slices"
	"testing"
)

// the halves of U+1F600 as lone surrogates
const (
	high = "\xed\xa0\xbd"
	low  = "\xed\xb8\x80"
)

func TestLen(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"a😀b", 4},
		{"日本", 2},
		{high, 1},
		{"a" + low + high, 3},
	}
	for _, tt := range tests {
		if got := Len(tt.s); got != tt.want {
			t.Errorf("Len(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		s          string
		start, end int
		want       string
	}{
		{"hello", 1, 3, "el"},
		{"hello", 0, 100, "hello"},
		{"hello", 3, 3, ""},
		{"hello", 4, 2, ""},
		{"a😀b", 1, 3, "😀"},
		{"a😀b", 3, 4, "b"},
		{"a😀b", 0, 2, "a" + high},
		{"a😀b", 2, 4, low + "b"},
		{"a😀b", 2, 3, low},
		{"a" + high, 1, 2, high},
	}
	for _, tt := range tests {
		if got := Slice(tt.s, tt.start, tt.end); got != tt.want {
			t.Errorf("Slice(%q, %d, %d) = %q, want %q", tt.s, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		s, sub string
		from   int
		want   int
	}{
		{"ab\ncd\n", "\n", 0, 2},
		{"ab\ncd\n", "\n", 3, 5},
		{"ab\ncd", "\n", 3, -1},
		{"😀\nx", "\n", 0, 2},
		{"😀\nx", "\n", 1, 2},
	}
	for _, tt := range tests {
		if got := Index(tt.s, tt.sub, tt.from); got != tt.want {
			t.Errorf("Index(%q, %q, %d) = %d, want %d", tt.s, tt.sub, tt.from, got, tt.want)
		}
	}
}

func TestConcat(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"a" + high, low + "b", "a😀b"},
		{high, low, "😀"},
		{low, high, low + high},
		{"a", "b", "ab"},
		{"", low, low},
		{high, "", high},
	}
	for _, tt := range tests {
		if got := Concat(tt.a, tt.b); got != tt.want {
			t.Errorf("Concat(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSplitRejoin(t *testing.T) {
	s := "x😀y😀"
	for i := 0; i <= Len(s); i++ {
		a, b := Slice(s, 0, i), Slice(s, i, Len(s))
		if Len(a)+Len(b) != Len(s) {
			t.Errorf("split at %d: lengths %d + %d", i, Len(a), Len(b))
		}
		if got := Concat(a, b); got != s {
			t.Errorf("split at %d: Concat(%q, %q) = %q", i, a, b, got)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, s := range []string{"", "abc", "a😀b", "a" + high, low + high + "x"} {
		u := Encode(s)
		if len(u) != Len(s) {
			t.Errorf("Encode(%q) has %d units, Len says %d", s, len(u), Len(s))
		}
		if got := Decode(u); got != s {
			t.Errorf("Decode(Encode(%q)) = %q", s, got)
		}
		if got := FromRunes(Runes(s)); got != s {
			t.Errorf("FromRunes(Runes(%q)) = %q", s, got)
		}
	}
	if got, want := Encode(high+low), []uint16{0xD83D, 0xDE00}; !slices.Equal(got, want) {
		t.Errorf("Encode(high+low) = %x, want %x", got, want)
	}
}

func TestHasSurrogates(t *testing.T) {
	if HasSurrogates("a😀b\xed") {
		t.Errorf("HasSurrogates of well-formed text")
	}
	if !HasSurrogates("a" + low) {
		t.Errorf("lone low surrogate not found")
	}
}
