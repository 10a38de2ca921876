package enzyme

import (
	"github.com/ezrec/typo/base"
)

// Translate reads a strand two bases at a time and returns its enzymes.
//
// Punctuation closes the enzyme being built, if it has any aminos. A
// trailing unpaired base is ignored, as is any duplet holding a symbol
// outside the alphabet. A strand with no operations is inert and returns
// no enzymes.
func Translate(strand string) (enzymes []Enzyme) {
	var aminos []Amino
	direction := 0

	flush := func() {
		if len(aminos) == 0 {
			return
		}
		enzymes = append(enzymes, Enzyme{
			Aminos:  aminos,
			Binding: Binding(direction),
		})
		aminos = nil
		direction = 0
	}

	for n := 0; n+1 < len(strand); n += 2 {
		first, ok := base.FromByte(strand[n])
		if !ok {
			continue
		}
		second, ok := base.FromByte(strand[n+1])
		if !ok {
			continue
		}

		d, _ := Lookup(first, second)
		if d.Punctuation() {
			flush()
			continue
		}

		aminos = append(aminos, d.Amino)
		direction += d.Turn.Delta()
	}

	flush()

	return
}
