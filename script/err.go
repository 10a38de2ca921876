package script

import (
	"github.com/ezrec/typo/i18n"
)

var f = i18n.From

// ErrScript carries the starlark backtrace of a failed script.
type ErrScript struct {
	Backtrace string
	Err       error
}

func (err ErrScript) Error() string {
	return f("script failed\n%v", err.Backtrace)
}

func (err ErrScript) Unwrap() error {
	return err.Err
}
