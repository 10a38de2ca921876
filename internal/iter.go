package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterRanges splits [0, total) into at most parts contiguous, non-empty
// [start, end) ranges of near-equal size.
func IterRanges(total int, parts int) iter.Seq2[int, int] {
	return func(yield func(start, end int) bool) {
		if total <= 0 {
			return
		}
		parts = max(1, min(parts, total))
		size := total / parts
		extra := total % parts
		start := 0
		for n := range parts {
			end := start + size
			if n < extra {
				end++
			}
			if !yield(start, end) {
				return
			}
			start = end
		}
	}
}
