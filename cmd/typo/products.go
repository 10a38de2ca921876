package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/typo/reaction"
)

func newProductsCmd(a *app) *cobra.Command {
	var showReactions bool
	var batched bool

	cmd := &cobra.Command{
		Use:   "products CATALYST TARGET",
		Short: "Apply every enzyme of a catalyst at every binding site of a target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			pair := reaction.Pair{Catalyst: args[0], Target: args[1]}

			var reactions []reaction.Reaction
			if batched {
				metrics, err := a.metrics()
				if err != nil {
					return err
				}
				cfg, workers := a.batchConfig()
				all, err := reaction.ReactionsBatch(cmd.Context(), cfg, workers, metrics, []reaction.Pair{pair})
				if err != nil {
					return err
				}
				reactions = all[0]
			} else {
				reactions, err = reaction.Reactions(pair.Catalyst, pair.Target)
				if err != nil {
					return
				}
			}

			out := cmd.OutOrStdout()
			if showReactions {
				for _, r := range reactions {
					fmt.Fprintf(out, "%v@%d\t%v\n", r.Enzyme, r.Position, strings.Join(r.Outputs, " "))
				}
				return
			}

			for _, product := range reaction.Products(reactions) {
				fmt.Fprintln(out, product)
			}
			return
		},
	}

	cmd.Flags().BoolVarP(&showReactions, "reactions", "r", false, "print each reaction instead of the distinct products")
	cmd.Flags().BoolVarP(&batched, "batch", "b", false, "run the reactions on the batched interpreter")

	return cmd
}
