package base

import (
	"strings"
)

// Base is a single strand symbol.
type Base uint8

const (
	BASE_NONE = Base(0) // Empty slot.
	BASE_A    = Base(1) // Adenine.
	BASE_C    = Base(2) // Cytosine.
	BASE_G    = Base(3) // Guanine.
	BASE_T    = Base(4) // Thymine.
)

// Bases lists every non-empty base, in duplet table order.
var Bases = [4]Base{BASE_A, BASE_C, BASE_G, BASE_T}

const _symbols = "-ACGT"

var _complement = [5]Base{BASE_NONE, BASE_T, BASE_G, BASE_C, BASE_A}

var _fromByte = [256]Base{
	'A': BASE_A,
	'C': BASE_C,
	'G': BASE_G,
	'T': BASE_T,
}

// FromByte returns the base for a symbol, and false if the symbol is not
// one of A, C, G or T.
func FromByte(symbol byte) (b Base, ok bool) {
	b = _fromByte[symbol]
	ok = b != BASE_NONE
	return
}

// Valid returns true for A, C, G and T.
func (b Base) Valid() bool {
	return b >= BASE_A && b <= BASE_T
}

// Index returns the 0..3 position of the base in duplet table order.
func (b Base) Index() int {
	return int(b) - 1
}

// Byte returns the symbol for the base, '-' for BASE_NONE.
func (b Base) Byte() byte {
	if int(b) >= len(_symbols) {
		return '?'
	}
	return _symbols[b]
}

func (b Base) String() string {
	return string(b.Byte())
}

// Complement returns the paired base. BASE_NONE stays empty.
func (b Base) Complement() Base {
	if int(b) >= len(_complement) {
		return BASE_NONE
	}
	return _complement[b]
}

// IsPurine is true for A and G.
func (b Base) IsPurine() bool {
	return b == BASE_A || b == BASE_G
}

// IsPyrimidine is true for C and T.
func (b Base) IsPyrimidine() bool {
	return b == BASE_C || b == BASE_T
}

// Parse converts a strand string into bases.
func Parse(strand string) (bases []Base, err error) {
	bases = make([]Base, len(strand))
	for n := range len(strand) {
		b, ok := FromByte(strand[n])
		if !ok {
			err = ErrBase{Index: n, Symbol: strand[n]}
			bases = nil
			return
		}
		bases[n] = b
	}

	return
}

// Format converts bases into a strand string, skipping empty slots.
func Format(bases []Base) string {
	var sb strings.Builder
	sb.Grow(len(bases))
	for _, b := range bases {
		if b.Valid() {
			sb.WriteByte(b.Byte())
		}
	}
	return sb.String()
}

// Complement returns the base-wise complement of a strand string.
// Symbols outside the alphabet are kept as-is.
func Complement(strand string) string {
	out := []byte(strand)
	for n, c := range out {
		if b, ok := FromByte(c); ok {
			out[n] = b.Complement().Byte()
		}
	}
	return string(out)
}

// ReverseComplement returns the complement of the strand, read in reverse.
func ReverseComplement(strand string) string {
	out := []byte(Complement(strand))
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Validate returns an error if the strand has any symbol outside the alphabet.
func Validate(strand string) (err error) {
	for n := range len(strand) {
		if _, ok := FromByte(strand[n]); !ok {
			return ErrBase{Index: n, Symbol: strand[n]}
		}
	}
	return
}
