package batch

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/typo/base"
	"github.com/ezrec/typo/enzyme"
	"github.com/ezrec/typo/machine"
)

// randomLanes builds lanes from random programs and targets, bound at a
// random cell holding the enzyme's binding base.
func randomLanes(rands *rand.Rand, count int) (enzymes []enzyme.Enzyme, targets []string, positions []int) {
	for len(enzymes) < count {
		aminos := make([]enzyme.Amino, 1+rands.Intn(12))
		for n := range aminos {
			aminos[n] = enzyme.AMINO_CUT + enzyme.Amino(rands.Intn(15))
		}
		e := enzyme.New(aminos...)

		target := make([]byte, 1+rands.Intn(20))
		for n := range target {
			target[n] = base.Bases[rands.Intn(4)].Byte()
		}

		sites := enzyme.BindSites(e, string(target))
		if len(sites) == 0 {
			continue
		}

		enzymes = append(enzymes, e)
		targets = append(targets, string(target))
		positions = append(positions, sites[rands.Intn(len(sites))])
	}
	return
}

func TestDifferential_Random(t *testing.T) {
	assert := assert.New(t)

	rands := rand.New(rand.NewSource(0x7e9))

	for round := range 20 {
		enzymes, targets, positions := randomLanes(rands, 200)

		b, err := NewBatch(DefaultConfig(), enzymes, targets, positions)
		assert.NoError(err)
		b.Run()
		results := b.Results()

		for lane := range enzymes {
			name := fmt.Sprintf("round %d lane %d: %v on %v@%d", round, lane, enzymes[lane], targets[lane], positions[lane])

			state, err := machine.Bind(targets[lane], positions[lane])
			assert.NoError(err, name)
			state = machine.Run(state, enzymes[lane])

			assert.Equal(state, b.State(lane), name)
			assert.Equal(machine.Collect(state), results[lane], name)
			assert.Equal(OVERFLOW_NONE, b.Overflow(lane), name)
			assert.LessOrEqual(state.Pc, enzymes[lane].Len(), name)
		}
	}
}

func TestDifferential_Translated(t *testing.T) {
	assert := assert.New(t)

	rands := rand.New(rand.NewSource(42))

	var enzymes []enzyme.Enzyme
	var targets []string
	var positions []int
	for len(enzymes) < 500 {
		strand := make([]byte, 2+rands.Intn(30))
		for n := range strand {
			strand[n] = base.Bases[rands.Intn(4)].Byte()
		}
		for _, e := range enzyme.Translate(string(strand)) {
			for _, site := range enzyme.BindSites(e, string(strand)) {
				enzymes = append(enzymes, e)
				targets = append(targets, string(strand))
				positions = append(positions, site)
			}
		}
	}

	results, err := Execute(enzymes, targets, positions)
	assert.NoError(err)

	for lane := range enzymes {
		outputs, err := machine.Execute(enzymes[lane], targets[lane], positions[lane])
		assert.NoError(err)
		assert.Equal(outputs, results[lane], "%v on %v@%d", enzymes[lane], targets[lane], positions[lane])
	}
}

func TestExecuteParallel(t *testing.T) {
	assert := assert.New(t)

	rands := rand.New(rand.NewSource(7))
	enzymes, targets, positions := randomLanes(rands, 333)

	serial, err := Execute(enzymes, targets, positions)
	assert.NoError(err)

	for _, workers := range []int{1, 4, 1000} {
		parallel, err := ExecuteParallel(context.Background(), DefaultConfig(), workers, nil, enzymes, targets, positions)
		assert.NoError(err)
		assert.Equal(serial, parallel, "workers %d", workers)
	}

	positions[200] = 100
	_, err = ExecuteParallel(context.Background(), DefaultConfig(), 4, nil, enzymes, targets, positions)
	var lane ErrLane
	assert.ErrorAs(err, &lane)
	assert.Equal(200, lane.Lane)

	_, err = ExecuteParallel(context.Background(), DefaultConfig(), 4, nil, enzymes, targets, positions[:3])
	assert.ErrorIs(err, ErrLaneMismatch)
}

func TestExecuteParallel_Canceled(t *testing.T) {
	assert := assert.New(t)

	rands := rand.New(rand.NewSource(11))
	enzymes, targets, positions := randomLanes(rands, 50)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := ExecuteParallel(ctx, DefaultConfig(), 2, nil, enzymes, targets, positions)
	assert.ErrorIs(err, context.Canceled)
	assert.Nil(results)
}

func FuzzBatch(f *testing.F) {
	f.Add([]byte{0x08, 0x01}, []byte("ACGT"), uint8(1))
	f.Add([]byte{0x05, 0x02, 0x0b}, []byte("GATTACA"), uint8(3))
	f.Add([]byte{0x06, 0x0c, 0x03, 0x0e, 0x02}, []byte("CCGGTTAA"), uint8(0))

	f.Fuzz(func(t *testing.T, program []byte, target []byte, position uint8) {
		assert := assert.New(t)

		if len(target) == 0 || len(program) > 64 || len(target) > 256 {
			return
		}

		aminos := make([]enzyme.Amino, len(program))
		for n, word := range program {
			aminos[n] = enzyme.AMINO_CUT + enzyme.Amino(word%15)
		}
		e := enzyme.New(aminos...)

		strand := make([]byte, len(target))
		for n, symbol := range target {
			strand[n] = base.Bases[symbol%4].Byte()
		}
		at := int(position) % len(strand)

		outputs, err := machine.Execute(e, string(strand), at)
		assert.NoError(err)

		b, err := NewBatch(DefaultConfig(), []enzyme.Enzyme{e}, []string{string(strand)}, []int{at})
		assert.NoError(err)
		b.Run()

		assert.Equal(OVERFLOW_NONE, b.Overflow(0))
		assert.Equal([][]string{outputs}, b.Results())
	})
}
