package batch

import (
	"strings"
)

// Overflow flags the capacity limits a lane has run into.
type Overflow int

const (
	OVERFLOW_NONE     = Overflow(0)
	OVERFLOW_STRAND   = Overflow(1 << 0) // Insertion dropped, or target truncated on load.
	OVERFLOW_FRAGMENT = Overflow(1 << 1) // Fragment discarded by a cut.
)

var _overflowNames = []struct {
	flag Overflow
	name string
}{
	{OVERFLOW_STRAND, "strand"},
	{OVERFLOW_FRAGMENT, "fragment"},
}

func (o Overflow) String() string {
	if o == OVERFLOW_NONE {
		return "none"
	}
	var names []string
	for _, entry := range _overflowNames {
		if o&entry.flag != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, "|")
}
