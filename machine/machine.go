// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"slices"

	"github.com/ezrec/typo/base"
	"github.com/ezrec/typo/enzyme"
)

// State is the execution context of one enzyme bound to one strand.
type State struct {
	Strand    Strand   // Current dual strand.
	Cursor    int      // Bound cell index.
	Secondary bool     // Set when the cursor reads the secondary track.
	Copy      bool     // Copy mode.
	Pc        int      // Index of the next amino to execute.
	Fragments []Strand // Strands split off by cut, in creation order.
	Halt      Halt     // Reason the execution stopped, if it has.
}

// Bind creates the initial state for an enzyme bound at position of strand.
//
// The base at position is not checked against the enzyme's binding
// preference; callers enumerate valid positions with enzyme.BindSites.
func Bind(strand string, position int) (state State, err error) {
	s, err := ParseStrand(strand)
	if err != nil {
		return
	}

	if position < 0 || position >= len(s) {
		err = ErrBindRange{Position: position, Length: len(s)}
		return
	}

	state = State{
		Strand: s,
		Cursor: position,
	}

	return
}

// Terminated is true once the execution has stopped.
func (state State) Terminated() bool {
	return state.Halt != HALT_NONE
}

// Clone returns a copy of the state that shares no mutable data.
// Fragments are never modified after a cut, so only the list is copied.
func (state State) Clone() (clone State) {
	clone = state
	clone.Strand = state.Strand.Clone()
	clone.Fragments = slices.Clone(state.Fragments)
	return
}

// String returns the current state, for tracing.
func (state State) String() string {
	track := "primary"
	if state.Secondary {
		track = "secondary"
	}
	return fmt.Sprintf("pc:%d cursor:%d %v copy:%v halt:%v strand:%v fragments:%v",
		state.Pc, state.Cursor, track, state.Copy, state.Halt, state.Strand, state.Fragments)
}

// Step executes the next amino of the enzyme, returning the new state.
// A terminated state is returned unchanged.
func Step(state State, e enzyme.Enzyme) (next State) {
	if state.Terminated() {
		return state
	}

	next = state.Clone()

	if next.Pc >= len(e.Aminos) {
		next.Halt = HALT_EXHAUSTED
		return
	}

	amino := e.Aminos[next.Pc]
	next.Pc++
	next.execute(amino)

	switch {
	case next.Cursor < 0 || next.Cursor >= len(next.Strand):
		next.Halt = HALT_FELL_OFF
	case next.Pc >= len(e.Aminos):
		next.Halt = HALT_EXHAUSTED
	}

	return
}

// Run steps the enzyme until the execution terminates.
func Run(state State, e enzyme.Enzyme) State {
	for !state.Terminated() {
		state = Step(state, e)
	}
	return state
}

// Execute binds, runs and collects the outputs of one enzyme on a target.
func Execute(e enzyme.Enzyme, target string, position int) (outputs []string, err error) {
	state, err := Bind(target, position)
	if err != nil {
		return
	}

	outputs = Collect(Run(state, e))
	return
}

// execute applies a single amino in place.
func (state *State) execute(amino enzyme.Amino) {
	switch amino {
	case enzyme.AMINO_CUT:
		state.cut()
	case enzyme.AMINO_DEL:
		state.delete()
	case enzyme.AMINO_SWI:
		state.Secondary = !state.Secondary
	case enzyme.AMINO_MVR:
		state.move(1)
	case enzyme.AMINO_MVL:
		state.move(-1)
	case enzyme.AMINO_COP:
		state.Copy = true
		state.copyAt(state.Cursor)
	case enzyme.AMINO_OFF:
		state.Copy = false
	case enzyme.AMINO_INA, enzyme.AMINO_INC, enzyme.AMINO_ING, enzyme.AMINO_INT:
		b, _ := amino.Insert()
		state.insert(b)
	case enzyme.AMINO_RPY, enzyme.AMINO_RPU, enzyme.AMINO_LPY, enzyme.AMINO_LPU:
		direction, purine, _ := amino.Search()
		state.search(direction, purine)
	}
}

// copyAt writes the complement of the primary base at index into its
// secondary slot.
func (state *State) copyAt(index int) {
	if index < 0 || index >= len(state.Strand) {
		return
	}
	cell := &state.Strand[index]
	if cell.Primary.Valid() {
		cell.Secondary = cell.Primary.Complement()
	}
}

func (state *State) move(delta int) {
	state.Cursor += delta
	if state.Copy && !state.Secondary {
		state.copyAt(state.Cursor)
	}
}

func (state *State) insert(b base.Base) {
	cell := Cell{Primary: b}
	if state.Secondary {
		cell = Cell{Secondary: b}
	}
	state.Strand = slices.Insert(state.Strand, state.Cursor+1, cell)
	state.Cursor++
}

func (state *State) delete() {
	if state.Secondary {
		state.Strand[state.Cursor].Secondary = base.BASE_NONE
		return
	}
	state.Strand = slices.Delete(state.Strand, state.Cursor, state.Cursor+1)
}

func (state *State) cut() {
	split := state.Cursor + 1
	if split >= len(state.Strand) {
		return
	}
	state.Fragments = append(state.Fragments, state.Strand[split:].Clone())
	state.Strand = slices.Clip(state.Strand[:split])
}

func (state *State) search(direction int, purine bool) {
	if state.Secondary {
		direction = -direction
	}

	pos := state.Cursor + direction
	for ; pos >= 0 && pos < len(state.Strand); pos += direction {
		if state.Copy && !state.Secondary {
			state.copyAt(pos)
		}

		cell := state.Strand[pos]
		b := cell.Primary
		if state.Secondary {
			b = cell.Secondary
		}

		if (purine && b.IsPurine()) || (!purine && b.IsPyrimidine()) {
			break
		}
	}

	state.Cursor = pos
}
