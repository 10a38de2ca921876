package machine

import (
	"iter"
	"slices"

	"github.com/ezrec/typo/internal"
)

// Outputs yields the output strands of a terminated execution: for the main
// strand, then each fragment in creation order, the primary bases followed
// by every run of secondary bases read antiparallel.
func Outputs(state State) iter.Seq[string] {
	seqs := make([]iter.Seq[string], 0, 1+len(state.Fragments))
	seqs = append(seqs, strandOutputs(state.Strand))
	for _, fragment := range state.Fragments {
		seqs = append(seqs, strandOutputs(fragment))
	}
	return internal.IterSeqConcat(seqs...)
}

// Collect returns the Outputs of an execution as a slice.
func Collect(state State) []string {
	return slices.Collect(Outputs(state))
}

func strandOutputs(s Strand) iter.Seq[string] {
	return func(yield func(string) bool) {
		primary := s.Primary()
		if len(primary) != 0 {
			if !yield(primary) {
				return
			}
		}

		var run []byte
		for n := 0; n <= len(s); n++ {
			if n < len(s) && s[n].Secondary.Valid() {
				run = append(run, s[n].Secondary.Byte())
				continue
			}
			if len(run) == 0 {
				continue
			}
			slices.Reverse(run)
			if !yield(string(run)) {
				return
			}
			run = run[:0]
		}
	}
}
