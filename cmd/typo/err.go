package main

import (
	"errors"

	"github.com/ezrec/typo/i18n"
)

var f = i18n.From

var (
	ErrVerifySize = errors.New(f("lane count and maximum sizes must be positive"))
)

// ErrLaneLine is a malformed line of a lane file.
type ErrLaneLine struct {
	Line int
	Text string
	Err  error
}

func (err ErrLaneLine) Error() string {
	if err.Err != nil {
		return f("line %d: %q: %v", err.Line, err.Text, err.Err)
	}
	return f("line %d: %q: expected ENZYME TARGET POSITION", err.Line, err.Text)
}

func (err ErrLaneLine) Unwrap() error {
	return err.Err
}

// ErrMismatch is the number of lanes where the interpreters disagree.
type ErrMismatch int

func (err ErrMismatch) Error() string {
	return f("%d lanes differ between the scalar and batched interpreters", int(err))
}
