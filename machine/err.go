package machine

import (
	"github.com/ezrec/typo/i18n"
)

var f = i18n.From

// ErrBindRange reports a bind position outside of the target strand.
type ErrBindRange struct {
	Position int
	Length   int
}

func (err ErrBindRange) Error() string {
	return f("bind position %d outside strand of length %d", err.Position, err.Length)
}
