// Package batch implements the lockstep Typogenetics interpreter.
//
// A Batch holds many independent executions (lanes) in flat, fixed-capacity
// buffers. Every Tick advances all live lanes by one amino. Programs are
// packed into one code buffer, each padded with AMINO_NOP past its end, so a
// single tick counter drives every lane; a lane that reaches a no-op halts as
// exhausted.
//
// Within capacity a lane produces exactly the outputs of machine.Execute.
// Past capacity, an insertion into a full lane is dropped and a cut with no
// free fragment slot discards the fragment. Both events are flagged on the
// lane (see Overflow) and counted by the attached Metrics.
package batch
