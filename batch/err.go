package batch

import (
	"errors"

	"github.com/ezrec/typo/i18n"
)

var f = i18n.From

var (
	ErrLaneMismatch = errors.New(f("enzyme, target and position counts differ"))
)

// ErrLane locates a load error to its lane.
type ErrLane struct {
	Lane int
	Err  error
}

func (err ErrLane) Error() string {
	return f("lane %d %v", err.Lane, err.Err)
}

func (err ErrLane) Unwrap() error {
	return err.Err
}
