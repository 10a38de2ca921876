package enzyme

import (
	"github.com/ezrec/typo/base"
)

// Amino is a single enzyme operation.
type Amino int

//go:generate go tool stringer -linecomment -type=Amino
const (
	AMINO_PUN = Amino(0)  // pun
	AMINO_CUT = Amino(1)  // cut
	AMINO_DEL = Amino(2)  // del
	AMINO_SWI = Amino(3)  // swi
	AMINO_MVR = Amino(4)  // mvr
	AMINO_MVL = Amino(5)  // mvl
	AMINO_COP = Amino(6)  // cop
	AMINO_OFF = Amino(7)  // off
	AMINO_INA = Amino(8)  // ina
	AMINO_INC = Amino(9)  // inc
	AMINO_ING = Amino(10) // ing
	AMINO_INT = Amino(11) // int
	AMINO_RPY = Amino(12) // rpy
	AMINO_RPU = Amino(13) // rpu
	AMINO_LPY = Amino(14) // lpy
	AMINO_LPU = Amino(15) // lpu
	AMINO_NOP = Amino(16) // nop
)

// Turn is the heading change an amino contributes during folding.
type Turn int

//go:generate go tool stringer -linecomment -type=Turn
const (
	TURN_S = Turn(0) // s
	TURN_R = Turn(1) // r
	TURN_L = Turn(2) // l
)

// Delta returns the quarter-turn change: 0, +1 (clockwise) or -1.
func (turn Turn) Delta() int {
	switch turn {
	case TURN_R:
		return 1
	case TURN_L:
		return -1
	}
	return 0
}

// Operation returns true if the amino is an executable operation.
func (amino Amino) Operation() bool {
	return amino > AMINO_PUN && amino < AMINO_NOP
}

// Insert returns the base inserted by an ina/inc/ing/int amino.
func (amino Amino) Insert() (b base.Base, ok bool) {
	switch amino {
	case AMINO_INA, AMINO_INC, AMINO_ING, AMINO_INT:
		return _inserts[amino-AMINO_INA], true
	}
	return
}

// Search returns the scan direction (+1 right, -1 left) and whether the
// amino looks for a purine, for the rpy/rpu/lpy/lpu aminos.
func (amino Amino) Search() (direction int, purine bool, ok bool) {
	switch amino {
	case AMINO_RPY:
		return 1, false, true
	case AMINO_RPU:
		return 1, true, true
	case AMINO_LPY:
		return -1, false, true
	case AMINO_LPU:
		return -1, true, true
	}
	return
}

// ParseAmino returns the amino for a mnemonic.
func ParseAmino(mnemonic string) (amino Amino, err error) {
	for amino = AMINO_CUT; amino < AMINO_NOP; amino++ {
		if amino.String() == mnemonic {
			return
		}
	}
	err = ErrMnemonic(mnemonic)
	return
}
