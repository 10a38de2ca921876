package base

import (
	"github.com/ezrec/typo/i18n"
)

var f = i18n.From

// ErrBase reports a symbol outside the A, C, G, T alphabet.
type ErrBase struct {
	Index  int
	Symbol byte
}

func (err ErrBase) Error() string {
	return f("invalid base %q at index %d", rune(err.Symbol), err.Index)
}
