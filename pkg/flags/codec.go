package flags

import (
	"errors"
	"fmt"
)

// alphabet is the 8-consonant encoding alphabet spec.md §4.4 mandates:
// one character per 3-bit group, chosen to contain no vowels so a
// flagstring never accidentally spells a word.
const alphabet = "BCDFGHKL"

// ErrInvalidFlagstring is returned by DecodeFlagstring for any input
// containing a character outside alphabet, too short to hold every
// encoded flag, or with a non-zero bit past the last encoded flag.
var ErrInvalidFlagstring = errors.New("flags: invalid flagstring")

var charToBits [256]int8

func init() {
	for i := range charToBits {
		charToBits[i] = -1
	}
	for i, c := range alphabet {
		charToBits[byte(c)] = int8(i)
	}
}

// EncodeFlagstring renders s's non-hidden flags as a flagstring: the
// flags, in table order, packed into a bitstring, padded with trailing
// zero bits to a multiple of 3, then regrouped into 3-bit chunks and
// mapped through alphabet.
func EncodeFlagstring(s *Set) string {
	var bits []bool
	for _, m := range table {
		if m.category == CategoryHidden {
			continue
		}
		bits = append(bits, s.bools[m.key])
	}
	for len(bits)%3 != 0 {
		bits = append(bits, false)
	}

	out := make([]byte, 0, len(bits)/3)
	for i := 0; i < len(bits); i += 3 {
		v := 0
		for j := 0; j < 3; j++ {
			v <<= 1
			if bits[i+j] {
				v |= 1
			}
		}
		out = append(out, alphabet[v])
	}
	return string(out)
}

// DecodeFlagstring parses a flagstring produced by EncodeFlagstring back
// into a Set. Every character must belong to alphabet; any other
// character, including one from a different-length encoding that
// produces a truncated final group, is rejected with
// ErrInvalidFlagstring rather than silently ignored (spec.md §4.4
// "strict alphabet, reject anything else").
func DecodeFlagstring(s string) (*Set, error) {
	bits := make([]bool, 0, len(s)*3)
	for i := 0; i < len(s); i++ {
		v := charToBits[s[i]]
		if v < 0 {
			return nil, fmt.Errorf("%w: character %q at position %d", ErrInvalidFlagstring, s[i], i)
		}
		for j := 2; j >= 0; j-- {
			bits = append(bits, (v>>uint(j))&1 == 1)
		}
	}

	n := encodedBitCount()
	if len(bits) < n {
		return nil, fmt.Errorf("%w: decodes to %d bits, need at least %d", ErrInvalidFlagstring, len(bits), n)
	}
	for i := n; i < len(bits); i++ {
		if bits[i] {
			return nil, fmt.Errorf("%w: non-zero padding bit at position %d", ErrInvalidFlagstring, i)
		}
	}

	out := NewSet()
	i := 0
	for _, m := range table {
		if m.category == CategoryHidden {
			continue
		}
		out.bools[m.key] = bits[i]
		i++
	}
	return out, nil
}
