package machine

// Halt is the reason an execution stopped.
type Halt int

//go:generate go tool stringer -linecomment -type=Halt
const (
	HALT_NONE      = Halt(0) // running
	HALT_FELL_OFF  = Halt(1) // fell-off
	HALT_EXHAUSTED = Halt(2) // exhausted
)
