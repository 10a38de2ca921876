package config

import (
	"errors"

	"github.com/ezrec/typo/i18n"
)

var f = i18n.From

var (
	ErrNegative     = errors.New(f("batch sizes must not be negative"))
	ErrFloorCeiling = errors.New(f("batch floor exceeds batch ceiling"))
)

// ErrLevel is an unknown log level name.
type ErrLevel string

func (err ErrLevel) Error() string {
	return f("unknown log level %q", string(err))
}

// ErrSettings wraps a settings file read failure.
type ErrSettings struct {
	Path string
	Err  error
}

func (err ErrSettings) Error() string {
	return f("settings %v: %v", err.Path, err.Err)
}

func (err ErrSettings) Unwrap() error {
	return err.Err
}
