package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/typo/base"
	"github.com/ezrec/typo/enzyme"
)

func newTranslateCmd(a *app) *cobra.Command {
	var showStrand bool
	var sites string

	cmd := &cobra.Command{
		Use:   "translate STRAND...",
		Short: "Translate strands into enzymes",
		Long: `Translate each strand into its enzymes, one per line, in the form
ina-cop-rpy:T. The trailing base is the enzyme's binding preference.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(sites) != 0 {
				err = base.Validate(sites)
				if err != nil {
					return
				}
			}

			out := cmd.OutOrStdout()
			for _, strand := range args {
				err = base.Validate(strand)
				if err != nil {
					return
				}

				enzymes := enzyme.Translate(strand)
				a.logger.Debug("translated", "strand", strand, "enzymes", len(enzymes))

				for _, e := range enzymes {
					line := e.String()
					if showStrand {
						line += "\t" + e.Strand()
					}
					if len(sites) != 0 {
						line += fmt.Sprintf("\t%v", enzyme.BindSites(e, sites))
					}
					fmt.Fprintln(out, line)
				}
			}
			return
		},
	}

	cmd.Flags().BoolVar(&showStrand, "strand", false, "also print each enzyme's coding strand")
	cmd.Flags().StringVar(&sites, "sites", "", "also print the binding sites on this target")

	return cmd
}
