// Package reaction applies every enzyme of a catalyst strand to a target
// strand, at every site the enzyme binds to.
package reaction

import (
	"context"
	"slices"

	"github.com/ezrec/typo/base"
	"github.com/ezrec/typo/batch"
	"github.com/ezrec/typo/enzyme"
	"github.com/ezrec/typo/machine"
)

// Reaction is one enzyme bound at one position of a target.
type Reaction struct {
	Enzyme   enzyme.Enzyme
	Index    int // Index of the enzyme in the catalyst's translation.
	Position int // Bind position on the target.
	Outputs  []string
}

// Pair is a catalyst strand acting on a target strand.
type Pair struct {
	Catalyst string
	Target   string
}

// Plan lists the reactions of a pair without running them.
func Plan(catalyst, target string) (reactions []Reaction) {
	for n, e := range enzyme.Translate(catalyst) {
		for _, site := range enzyme.BindSites(e, target) {
			reactions = append(reactions, Reaction{
				Enzyme:   e,
				Index:    n,
				Position: site,
			})
		}
	}
	return
}

// Reactions runs every planned reaction of a pair on the scalar engine.
func Reactions(catalyst, target string) (reactions []Reaction, err error) {
	err = base.Validate(target)
	if err != nil {
		return
	}

	reactions = Plan(catalyst, target)
	for n := range reactions {
		r := &reactions[n]
		r.Outputs, err = machine.Execute(r.Enzyme, target, r.Position)
		if err != nil {
			reactions = nil
			return
		}
	}

	return
}

// ReactionsBatch runs the planned reactions of many pairs as lanes of
// batches, and returns them grouped per pair, in input order.
func ReactionsBatch(ctx context.Context, cfg batch.Config, workers int, metrics *batch.Metrics, pairs []Pair) (reactions [][]Reaction, err error) {
	var enzymes []enzyme.Enzyme
	var targets []string
	var positions []int

	reactions = make([][]Reaction, len(pairs))
	for n, pair := range pairs {
		err = base.Validate(pair.Target)
		if err != nil {
			reactions = nil
			return
		}
		reactions[n] = Plan(pair.Catalyst, pair.Target)
		for _, r := range reactions[n] {
			enzymes = append(enzymes, r.Enzyme)
			targets = append(targets, pair.Target)
			positions = append(positions, r.Position)
		}
	}

	results, err := batch.ExecuteParallel(ctx, cfg, workers, metrics, enzymes, targets, positions)
	if err != nil {
		reactions = nil
		return
	}

	lane := 0
	for n := range reactions {
		for m := range reactions[n] {
			reactions[n][m].Outputs = results[lane]
			lane++
		}
	}

	return
}

// Products returns the distinct outputs of all reactions, sorted.
func Products(reactions []Reaction) (products []string) {
	for _, r := range reactions {
		products = append(products, r.Outputs...)
	}
	slices.Sort(products)
	return slices.Compact(products)
}

// Survivor is true if the strand, acting on itself, reproduces itself in
// the outputs of at least one reaction.
func Survivor(strand string) (ok bool, err error) {
	reactions, err := Reactions(strand, strand)
	if err != nil {
		return
	}

	for _, r := range reactions {
		if slices.Contains(r.Outputs, strand) {
			ok = true
			return
		}
	}

	return
}
