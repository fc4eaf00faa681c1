// Package utf16x measures and slices strings in UTF-16 code units, the
// indexing unit of delta lengths.
//
// Cutting a string inside a surrogate pair leaves each half as a lone
// surrogate. Lone surrogates are kept in strings in their generalized
// UTF-8 (WTF-8) form, three bytes starting with 0xED, and count as one
// code unit each. Append and Concat join a trailing high half with a
// leading low half back into the original character.
package utf16x

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	surrMin  = 0xD800
	lowMin   = 0xDC00
	surrMax  = 0xDFFF
	surrSize = 3
)

func isSurrogate(r rune) bool { return r >= surrMin && r <= surrMax }

// decode is utf8.DecodeRuneInString extended to lone surrogates.
func decode(s string) (rune, int) {
	if len(s) >= surrSize && s[0] == 0xED && s[1] >= 0xA0 && s[1] <= 0xBF && s[2]&0xC0 == 0x80 {
		return 0xD000 | rune(s[1]&0x3F)<<6 | rune(s[2]&0x3F), surrSize
	}
	return utf8.DecodeRuneInString(s)
}

func appendSurrogate(b []byte, r rune) []byte {
	return append(b, 0xED, 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F)
}

func runeLen(r rune) int {
	if isSurrogate(r) {
		return 1
	}
	return utf16.RuneLen(r)
}

// Len returns the number of UTF-16 code units needed to encode s.
func Len(s string) int {
	n := 0
	for len(s) > 0 {
		r, size := decode(s)
		n += runeLen(r)
		s = s[size:]
	}
	return n
}

// Encode returns the UTF-16 code units of s.
func Encode(s string) []uint16 {
	res := make([]uint16, 0, len(s))
	for len(s) > 0 {
		r, size := decode(s)
		if isSurrogate(r) {
			res = append(res, uint16(r))
		} else {
			res = utf16.AppendRune(res, r)
		}
		s = s[size:]
	}
	return res
}

// Decode returns the string for the code units u. Lone surrogates are
// kept.
func Decode(u []uint16) string {
	b := make([]byte, 0, len(u))
	for i := 0; i < len(u); i++ {
		r := rune(u[i])
		switch {
		case !isSurrogate(r):
			b = utf8.AppendRune(b, r)
		case r < lowMin && i+1 < len(u) && rune(u[i+1]) >= lowMin && rune(u[i+1]) <= surrMax:
			b = utf8.AppendRune(b, utf16.DecodeRune(r, rune(u[i+1])))
			i++
		default:
			b = appendSurrogate(b, r)
		}
	}
	return string(b)
}

// Runes returns the characters of s, with lone surrogates as their own
// code points, so that every element is one or two code units.
func Runes(s string) []rune {
	res := make([]rune, 0, len(s))
	for len(s) > 0 {
		r, size := decode(s)
		res = append(res, r)
		s = s[size:]
	}
	return res
}

// FromRunes is the inverse of Runes.
func FromRunes(rs []rune) string {
	b := make([]byte, 0, len(rs))
	for _, r := range rs {
		b = appendRune(b, r)
	}
	return string(b)
}

func appendRune(b []byte, r rune) []byte {
	if isSurrogate(r) {
		return Append(b, string(appendSurrogate(nil, r)))
	}
	return utf8.AppendRune(b, r)
}

// HasSurrogates reports whether s holds a lone surrogate.
func HasSurrogates(s string) bool {
	for len(s) > 0 {
		r, size := decode(s)
		if isSurrogate(r) {
			return true
		}
		s = s[size:]
	}
	return false
}

// Append appends s to b, joining a high surrogate ending b with a low
// surrogate starting s.
func Append(b []byte, s string) []byte {
	if len(b) >= surrSize && len(s) >= surrSize {
		hi, hs := decode(string(b[len(b)-surrSize:]))
		lo, ls := decode(s)
		if hs == surrSize && ls == surrSize && hi >= surrMin && hi < lowMin && lo >= lowMin && lo <= surrMax {
			b = utf8.AppendRune(b[:len(b)-surrSize], utf16.DecodeRune(hi, lo))
			return append(b, s[surrSize:]...)
		}
	}
	return append(b, s...)
}

// Concat returns a followed by b, as Append.
func Concat(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return string(Append([]byte(a), b))
}

// Slice returns the part of s between the UTF-16 offsets start and end.
// Offsets are clamped to [0, Len(s)]. A boundary falling inside a
// surrogate pair leaves the half on each side as a lone surrogate.
func Slice(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}
	bStart, splitStart := byteOffset(s, start)
	bEnd, splitEnd := byteOffset(s, end)
	if !splitStart && !splitEnd {
		return s[bStart:bEnd]
	}
	units := Encode(s)
	end = min(end, len(units))
	if start >= end {
		return ""
	}
	return Decode(units[start:end])
}

// byteOffset maps a UTF-16 offset to a byte offset in s. split reports
// whether the offset falls between the two halves of a surrogate pair, in
// which case b is the start of the rune following the pair.
func byteOffset(s string, off int) (b int, split bool) {
	n := 0
	for i := 0; i < len(s); {
		if n >= off {
			return i, n > off
		}
		r, size := decode(s[i:])
		n += runeLen(r)
		i += size
	}
	if n > off {
		return len(s), true
	}
	return len(s), false
}

// Index returns the UTF-16 offset of the first occurrence of sub in s at
// or after the UTF-16 offset from, or -1.
func Index(s, sub string, from int) int {
	b, split := byteOffset(s, from)
	if split {
		from++
	}
	i := strings.Index(s[b:], sub)
	if i < 0 {
		return -1
	}
	return from + Len(s[b:b+i])
}
