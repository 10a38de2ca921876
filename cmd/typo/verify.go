package main

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ezrec/typo/base"
	"github.com/ezrec/typo/batch"
	"github.com/ezrec/typo/enzyme"
	"github.com/ezrec/typo/machine"
)

// randomLanes generates random lanes, each bound at a random position of its
// target. Enzymes carry no punctuation.
func randomLanes(rng *rand.Rand, count int, maxTarget int, maxProgram int) (l lanes) {
	for range count {
		aminos := make([]enzyme.Amino, 1+rng.IntN(maxProgram))
		for n := range aminos {
			aminos[n] = enzyme.Amino(1 + rng.IntN(int(enzyme.AMINO_LPU)))
		}

		target := make([]base.Base, 1+rng.IntN(maxTarget))
		for n := range target {
			target[n] = base.Bases[rng.IntN(len(base.Bases))]
		}

		l.enzymes = append(l.enzymes, enzyme.New(aminos...))
		l.targets = append(l.targets, base.Format(target))
		l.positions = append(l.positions, rng.IntN(len(target)))
	}
	return
}

func newVerifyCmd(a *app) *cobra.Command {
	var count int
	var seed uint64
	var maxTarget int
	var maxProgram int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the batched interpreter against the scalar interpreter",
		Long: `Run random lanes through both interpreters and report every lane whose
outputs differ. Lanes that overflow the batch capacity are expected to
differ; the default capacities never overflow for the default sizes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if count <= 0 || maxTarget <= 0 || maxProgram <= 0 {
				err = ErrVerifySize
				return
			}

			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			l := randomLanes(rng, count, maxTarget, maxProgram)

			metrics, err := a.metrics()
			if err != nil {
				return
			}

			cfg, workers := a.batchConfig()
			results, err := batch.ExecuteParallel(cmd.Context(), cfg, workers, metrics, l.enzymes, l.targets, l.positions)
			if err != nil {
				return
			}

			mismatches := 0
			for lane, outputs := range results {
				var expect []string
				expect, err = machine.Execute(l.enzymes[lane], l.targets[lane], l.positions[lane])
				if err != nil {
					return
				}
				if slices.Equal(expect, outputs) {
					continue
				}
				mismatches++
				a.logger.Warn("mismatch",
					"lane", lane,
					"enzyme", l.enzymes[lane].String(),
					"target", l.targets[lane],
					"position", l.positions[lane],
					"scalar", expect,
					"batch", outputs)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d lanes, %d mismatches\n", count, mismatches)
			if mismatches != 0 {
				err = ErrMismatch(mismatches)
			}
			return
		},
	}

	cmd.Flags().IntVarP(&count, "lanes", "n", 1000, "number of random lanes")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&maxTarget, "max-target", 32, "maximum target length")
	cmd.Flags().IntVar(&maxProgram, "max-program", 16, "maximum enzyme length")

	return cmd
}
