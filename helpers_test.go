package delta

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/signadot/delta/attr"
	"github.com/signadot/delta/ir"
)

var deltaOpts = cmp.Options{cmp.Comparer(ir.Equal), cmpopts.EquateEmpty()}

func checkDelta(t *testing.T, got, want Delta) {
	t.Helper()
	if diff := cmp.Diff(want, got, deltaOpts); diff != "" {
		t.Errorf("(-want +got):\n%s\nwant %s\ngot  %s", diff, want, got)
	}
}

func bold() attr.Map {
	return attr.Map{"bold": ir.FromBool(true)}
}

func color(c string) attr.Map {
	return attr.Map{"color": ir.FromString(c)}
}

func image(src string) *ir.Node {
	return ir.FromMap(map[string]*ir.Node{"image": ir.FromString(src)})
}

var astralRunes = []rune("ab\né😀")

func randText(r *rand.Rand, alphabet []rune) string {
	rs := make([]rune, 1+r.IntN(4))
	for i := range rs {
		rs[i] = alphabet[r.IntN(len(alphabet))]
	}
	return string(rs)
}

func randAttrs(r *rand.Rand, enabled, nulls bool) attr.Map {
	if !enabled {
		return nil
	}
	switch r.IntN(4) {
	case 0:
		return bold()
	case 1:
		return color("red")
	case 2:
		if nulls {
			return attr.Map{"bold": ir.Null()}
		}
	}
	return nil
}

func randDoc(r *rand.Rand, alphabet []rune, withAttrs bool) Delta {
	var d Delta
	for range r.IntN(6) {
		if r.IntN(6) == 0 {
			d.InsertEmbed(image(strconv.Itoa(r.IntN(2))), randAttrs(r, withAttrs, false))
			continue
		}
		d.Insert(randText(r, alphabet), randAttrs(r, withAttrs, false))
	}
	return d
}

// randChange returns a random change applicable to a document of the given
// length.
func randChange(r *rand.Rand, length int, withAttrs bool) Delta {
	var d Delta
	pos := 0
	for pos < length {
		n := 1 + r.IntN(min(3, length-pos))
		switch r.IntN(3) {
		case 0:
			d.Retain(n, randAttrs(r, withAttrs, true))
			pos += n
		case 1:
			d.Delete(n)
			pos += n
		default:
			d.Insert(randText(r, astralRunes), randAttrs(r, withAttrs, false))
		}
	}
	if r.IntN(2) == 0 {
		d.Insert(randText(r, astralRunes), randAttrs(r, withAttrs, false))
	}
	return *d.Chop()
}
