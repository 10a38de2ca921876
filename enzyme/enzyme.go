package enzyme

import (
	"strings"

	"github.com/ezrec/typo/base"
)

// Enzyme is a translated program and the base it binds to.
type Enzyme struct {
	Aminos  []Amino
	Binding base.Base
}

// New creates an enzyme from aminos, deriving the binding preference.
func New(aminos ...Amino) (e Enzyme) {
	direction := 0
	for _, amino := range aminos {
		for _, d := range _duplets {
			if d.Amino == amino {
				direction += d.Turn.Delta()
				break
			}
		}
	}

	e = Enzyme{
		Aminos:  append([]Amino(nil), aminos...),
		Binding: Binding(direction),
	}

	return
}

// Len returns the program length.
func (e Enzyme) Len() int {
	return len(e.Aminos)
}

// String returns the mnemonic form, ie "ina-inc:T".
func (e Enzyme) String() string {
	words := make([]string, len(e.Aminos))
	for n, amino := range e.Aminos {
		words[n] = amino.String()
	}
	return strings.Join(words, "-") + ":" + e.Binding.String()
}

// Strand encodes the enzyme back into the strand that translates to it.
func (e Enzyme) Strand() string {
	var sb strings.Builder
	sb.Grow(2 * len(e.Aminos))
	for _, amino := range e.Aminos {
		first, second, ok := Duplets(amino)
		if !ok {
			continue
		}
		sb.WriteByte(first.Byte())
		sb.WriteByte(second.Byte())
	}
	return sb.String()
}

// BindSites returns every index of target holding the enzyme's binding base.
func BindSites(e Enzyme, target string) (sites []int) {
	want := e.Binding.Byte()
	for n := range len(target) {
		if target[n] == want {
			sites = append(sites, n)
		}
	}
	return
}

// ParseEnzyme parses the mnemonic form produced by Enzyme.String. The
// binding suffix is optional and, when present, must match the derived one.
func ParseEnzyme(text string) (e Enzyme, err error) {
	program, binding, has_binding := strings.Cut(text, ":")

	var aminos []Amino
	if len(program) != 0 {
		for _, word := range strings.Split(program, "-") {
			var amino Amino
			amino, err = ParseAmino(word)
			if err != nil {
				return
			}
			aminos = append(aminos, amino)
		}
	}

	e = New(aminos...)

	if has_binding && binding != e.Binding.String() {
		err = ErrBindingMismatch{Enzyme: e, Binding: binding}
		e = Enzyme{}
	}

	return
}
