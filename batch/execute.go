package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/typo/enzyme"
	"github.com/ezrec/typo/internal"
)

// Execute runs every (enzyme, target, position) triple in one batch with the
// default capacities, and returns each lane's outputs in input order.
func Execute(enzymes []enzyme.Enzyme, targets []string, positions []int) (results [][]string, err error) {
	return ExecuteConfig(DefaultConfig(), enzymes, targets, positions)
}

// ExecuteConfig is Execute with explicit capacities.
func ExecuteConfig(cfg Config, enzymes []enzyme.Enzyme, targets []string, positions []int) (results [][]string, err error) {
	b, err := NewBatch(cfg, enzymes, targets, positions)
	if err != nil {
		return
	}

	b.Run()

	results = b.Results()
	return
}

// ExecuteParallel splits the lanes into at most workers contiguous ranges and
// runs one batch per range concurrently. Ranges share no state. Results are
// in input order. The context is checked between ticks.
func ExecuteParallel(ctx context.Context, cfg Config, workers int, metrics *Metrics, enzymes []enzyme.Enzyme, targets []string, positions []int) (results [][]string, err error) {
	if len(enzymes) != len(targets) || len(targets) != len(positions) {
		err = ErrLaneMismatch
		return
	}

	results = make([][]string, len(enzymes))

	g, ctx := errgroup.WithContext(ctx)
	for start, end := range internal.IterRanges(len(enzymes), workers) {
		g.Go(func() (err error) {
			b, err := NewBatch(cfg, enzymes[start:end], targets[start:end], positions[start:end])
			if err != nil {
				if lane, ok := err.(ErrLane); ok {
					lane.Lane += start
					err = lane
				}
				return
			}
			b.Metrics = metrics

			for done := false; !done; done = b.Tick() {
				err = ctx.Err()
				if err != nil {
					return
				}
			}

			copy(results[start:end], b.Results())
			return
		})
	}

	err = g.Wait()
	if err != nil {
		results = nil
	}

	return
}
