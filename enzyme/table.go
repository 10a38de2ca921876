package enzyme

import (
	"github.com/ezrec/typo/base"
)

// Duplet is a decoded table entry: an amino and its folding turn.
// Punctuation decodes to AMINO_PUN.
type Duplet struct {
	Amino Amino
	Turn  Turn
}

// Punctuation returns true if the duplet closes an enzyme.
func (d Duplet) Punctuation() bool {
	return d.Amino == AMINO_PUN
}

// _duplets is indexed by 4*first+second, bases in A, C, G, T order.
var _duplets = [16]Duplet{
	{AMINO_PUN, TURN_S}, // AA
	{AMINO_CUT, TURN_S}, // AC
	{AMINO_DEL, TURN_S}, // AG
	{AMINO_SWI, TURN_R}, // AT
	{AMINO_MVR, TURN_S}, // CA
	{AMINO_MVL, TURN_S}, // CC
	{AMINO_COP, TURN_R}, // CG
	{AMINO_OFF, TURN_L}, // CT
	{AMINO_INA, TURN_S}, // GA
	{AMINO_INC, TURN_R}, // GC
	{AMINO_ING, TURN_R}, // GG
	{AMINO_INT, TURN_L}, // GT
	{AMINO_RPY, TURN_R}, // TA
	{AMINO_RPU, TURN_L}, // TC
	{AMINO_LPY, TURN_L}, // TG
	{AMINO_LPU, TURN_L}, // TT
}

// _binding maps the folded direction (right, down, left, up) to the base
// the enzyme binds to.
var _binding = [4]base.Base{base.BASE_A, base.BASE_G, base.BASE_T, base.BASE_C}

var _inserts = [4]base.Base{base.BASE_A, base.BASE_C, base.BASE_G, base.BASE_T}

// Lookup decodes a duplet of two valid bases.
func Lookup(first, second base.Base) (d Duplet, ok bool) {
	if !first.Valid() || !second.Valid() {
		return
	}

	return _duplets[first.Index()*4+second.Index()], true
}

// Duplets returns the two-base code for an amino, and false for AMINO_NOP or
// an unknown amino.
func Duplets(amino Amino) (first, second base.Base, ok bool) {
	for n, d := range _duplets {
		if d.Amino == amino {
			return base.Bases[n/4], base.Bases[n%4], true
		}
	}
	return
}

// Binding returns the preferred base for a folded direction sum.
func Binding(direction int) base.Base {
	return _binding[((direction%4)+4)%4]
}
