package enzyme

import (
	"github.com/ezrec/typo/i18n"
)

var f = i18n.From

type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("'%v' is not an amino", string(err))
}

type ErrBindingMismatch struct {
	Enzyme  Enzyme
	Binding string
}

func (err ErrBindingMismatch) Error() string {
	return f("enzyme %v does not bind to '%v'", err.Enzyme.String(), err.Binding)
}
