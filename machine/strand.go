package machine

import (
	"slices"
	"strings"

	"github.com/ezrec/typo/base"
)

// Cell is one aligned position of a dual strand.
type Cell struct {
	Primary   base.Base
	Secondary base.Base
}

// Strand is a dual strand. Both tracks share one slice, so they always have
// the same length.
type Strand []Cell

// NewStrand creates a strand with the bases on the primary track.
func NewStrand(bases []base.Base) (s Strand) {
	s = make(Strand, len(bases))
	for n, b := range bases {
		s[n].Primary = b
	}
	return
}

// ParseStrand creates a strand from a string of bases.
func ParseStrand(text string) (s Strand, err error) {
	bases, err := base.Parse(text)
	if err != nil {
		return
	}
	s = NewStrand(bases)
	return
}

// Clone returns an unaliased copy of the strand.
func (s Strand) Clone() Strand {
	return slices.Clone(s)
}

// Primary returns the non-empty primary bases, in order.
func (s Strand) Primary() string {
	var sb strings.Builder
	for _, cell := range s {
		if cell.Primary.Valid() {
			sb.WriteByte(cell.Primary.Byte())
		}
	}
	return sb.String()
}

// String shows both tracks, empty slots as '-', as "primary/secondary".
func (s Strand) String() string {
	primary := make([]byte, len(s))
	secondary := make([]byte, len(s))
	for n, cell := range s {
		primary[n] = cell.Primary.Byte()
		secondary[n] = cell.Secondary.Byte()
	}
	return string(primary) + "/" + string(secondary)
}
