// Package machine implements the scalar Typogenetics interpreter.
//
// An enzyme is bound to a cell of a dual strand, then executed one amino at
// a time. Each Step returns a new State and never modifies its input, so
// every intermediate state can be kept and compared. Execution ends when the
// cursor leaves the strand (HALT_FELL_OFF) or the program runs out
// (HALT_EXHAUSTED). Collect then reads the output strands from the main
// strand and from every fragment split off by a cut.
package machine
