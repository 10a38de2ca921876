package batch

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/typo/enzyme"
	"github.com/ezrec/typo/machine"
)

func TestConfig_Capacity(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	assert.Equal(64, cfg.Capacity(10, 5))
	assert.Equal(200, cfg.Capacity(150, 50))
	assert.Equal(4096, cfg.Capacity(5000, 50))
	assert.Equal(7, cfg.Slots(7))

	cfg = Config{Floor: 1, Ceiling: 8, Fragments: 2}
	assert.Equal(4, cfg.Capacity(3, 1))
	assert.Equal(8, cfg.Capacity(30, 1))
	assert.Equal(2, cfg.Slots(7))

	assert.Equal(64, Config{}.Capacity(1, 1))
}

func TestExecute_Scenarios(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		aminos   []enzyme.Amino
		target   string
		position int
		outputs  []string
	}){
		{"insert-c", []enzyme.Amino{enzyme.AMINO_INC}, "AC", 0, []string{"ACC"}},
		{"cut", []enzyme.Amino{enzyme.AMINO_CUT}, "ACGT", 1, []string{"AC", "GT"}},
		{"cut-twice", []enzyme.Amino{enzyme.AMINO_CUT, enzyme.AMINO_MVL, enzyme.AMINO_CUT}, "ACGT", 2, []string{"AC", "T", "G"}},
		{"delete-last", []enzyme.Amino{enzyme.AMINO_DEL, enzyme.AMINO_INA}, "ACG", 2, []string{"AC"}},
		{"delete-only", []enzyme.Amino{enzyme.AMINO_DEL}, "A", 0, nil},
		{"copy-walk", []enzyme.Amino{enzyme.AMINO_COP, enzyme.AMINO_MVR, enzyme.AMINO_MVR}, "ACG", 0, []string{"ACG", "CGT"}},
		{"copy-search", []enzyme.Amino{enzyme.AMINO_COP, enzyme.AMINO_RPU}, "CTTA", 0, []string{"CTTA", "TAAG"}},
		{"search-left", []enzyme.Amino{enzyme.AMINO_LPY, enzyme.AMINO_INA}, "CAGA", 3, []string{"CAAGA"}},
		{"insert-secondary", []enzyme.Amino{enzyme.AMINO_SWI, enzyme.AMINO_INA}, "CG", 0, []string{"CG", "A"}},
		{"empty", nil, "GA", 1, []string{"GA"}},
	}

	var enzymes []enzyme.Enzyme
	var targets []string
	var positions []int
	for _, entry := range table {
		enzymes = append(enzymes, enzyme.New(entry.aminos...))
		targets = append(targets, entry.target)
		positions = append(positions, entry.position)
	}

	results, err := Execute(enzymes, targets, positions)
	assert.NoError(err)
	assert.Len(results, len(table))

	for n, entry := range table {
		assert.Equal(entry.outputs, results[n], entry.name)

		scalar, err := machine.Execute(enzymes[n], entry.target, entry.position)
		assert.NoError(err, entry.name)
		assert.Equal(scalar, results[n], entry.name)
	}
}

func TestBatch_Tick(t *testing.T) {
	assert := assert.New(t)

	enzymes := []enzyme.Enzyme{
		enzyme.New(enzyme.AMINO_MVR),
		enzyme.New(enzyme.AMINO_MVR, enzyme.AMINO_MVR, enzyme.AMINO_MVR),
		enzyme.New(enzyme.AMINO_MVR, enzyme.AMINO_MVR, enzyme.AMINO_MVR),
	}

	b, err := NewBatch(DefaultConfig(), enzymes, []string{"AAAA", "AAAA", "AAAAAA"}, []int{0, 2, 0})
	assert.NoError(err)
	assert.Equal(3, b.Lanes())
	assert.Equal(64, b.Capacity())
	assert.Equal(3, b.Slots())

	assert.False(b.Tick())
	assert.Equal(machine.HALT_NONE, b.Halt(0))
	assert.Equal(machine.HALT_NONE, b.Halt(1))

	assert.False(b.Tick())
	assert.Equal(machine.HALT_EXHAUSTED, b.Halt(0))
	assert.Equal(machine.HALT_FELL_OFF, b.Halt(1))
	assert.Equal(machine.HALT_NONE, b.Halt(2))

	assert.False(b.Tick())
	assert.True(b.Tick())
	assert.Equal(machine.HALT_EXHAUSTED, b.Halt(2))
	assert.Equal(4, b.Ticks())

	assert.True(b.Tick())
	assert.Equal(4, b.Ticks())

	assert.Equal(1, b.State(0).Cursor)
	assert.Equal(4, b.State(1).Cursor)
	assert.Equal(3, b.State(2).Cursor)
}

func TestBatch_Errors(t *testing.T) {
	assert := assert.New(t)

	e := enzyme.New(enzyme.AMINO_MVR)

	_, err := NewBatch(DefaultConfig(), []enzyme.Enzyme{e}, []string{"A", "C"}, []int{0})
	assert.ErrorIs(err, ErrLaneMismatch)

	_, err = NewBatch(DefaultConfig(), []enzyme.Enzyme{e, e}, []string{"A", "C"}, []int{0, 1})
	assert.Equal(ErrLane{Lane: 1, Err: machine.ErrBindRange{Position: 1, Length: 1}}, err)
	assert.ErrorAs(err, &machine.ErrBindRange{})

	_, err = Execute([]enzyme.Enzyme{e}, []string{"AXA"}, []int{0})
	assert.Error(err)

	results, err := Execute(nil, nil, nil)
	assert.NoError(err)
	assert.Empty(results)
}

func TestBatch_OverflowStrand(t *testing.T) {
	assert := assert.New(t)

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	e := enzyme.New(enzyme.AMINO_INA, enzyme.AMINO_MVR)
	cfg := Config{Floor: 1, Ceiling: 4}

	b, err := NewBatch(cfg, []enzyme.Enzyme{e, e}, []string{"ACGT", "AC"}, []int{0, 0})
	assert.NoError(err)
	b.Metrics = metrics
	b.Run()

	assert.Equal(OVERFLOW_STRAND, b.Overflow(0))
	assert.Equal(OVERFLOW_NONE, b.Overflow(1))
	assert.Equal([][]string{{"ACGT"}, {"AAC"}}, b.Results())

	assert.Equal(float64(1), testutil.ToFloat64(metrics.Overflow.WithLabelValues("strand")))
	assert.Equal(float64(2), testutil.ToFloat64(metrics.Lanes))
	assert.Equal(float64(3), testutil.ToFloat64(metrics.Ticks))
}

func TestBatch_OverflowTruncate(t *testing.T) {
	assert := assert.New(t)

	e := enzyme.New(enzyme.AMINO_MVR)
	cfg := Config{Floor: 1, Ceiling: 2}

	b, err := NewBatch(cfg, []enzyme.Enzyme{e}, []string{"ACGT"}, []int{1})
	assert.NoError(err)
	b.Run()

	assert.Equal(OVERFLOW_STRAND, b.Overflow(0))
	assert.Equal(machine.HALT_FELL_OFF, b.Halt(0))
	assert.Equal([][]string{{"AC"}}, b.Results())

	_, err = NewBatch(cfg, []enzyme.Enzyme{e}, []string{"ACGT"}, []int{3})
	assert.ErrorAs(err, &machine.ErrBindRange{})
}

func TestBatch_OverflowFragment(t *testing.T) {
	assert := assert.New(t)

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	e := enzyme.New(enzyme.AMINO_CUT, enzyme.AMINO_MVL, enzyme.AMINO_CUT)
	cfg := Config{Fragments: 1}

	b, err := NewBatch(cfg, []enzyme.Enzyme{e}, []string{"ACGT"}, []int{2})
	assert.NoError(err)
	b.Metrics = metrics
	b.Verbose = true
	b.Run()

	assert.Equal(OVERFLOW_FRAGMENT, b.Overflow(0))
	assert.Equal("fragment", b.Overflow(0).String())
	assert.Equal([][]string{{"AC", "T"}}, b.Results())
	assert.Equal(float64(1), testutil.ToFloat64(metrics.Overflow.WithLabelValues("fragment")))
}

func TestOverflow_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("none", OVERFLOW_NONE.String())
	assert.Equal("strand", OVERFLOW_STRAND.String())
	assert.Equal("strand|fragment", (OVERFLOW_STRAND | OVERFLOW_FRAGMENT).String())
}
