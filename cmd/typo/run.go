package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ezrec/typo/enzyme"
	"github.com/ezrec/typo/machine"
)

func newRunCmd(a *app) *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "run ENZYME TARGET POSITION",
		Short: "Run one enzyme bound to a target strand",
		Long: `Bind ENZYME (for example cut-mvr:A) at POSITION of TARGET, run it to
completion, and print the output strands.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			e, err := enzyme.ParseEnzyme(args[0])
			if err != nil {
				return
			}

			position, err := strconv.Atoi(args[2])
			if err != nil {
				return
			}

			state, err := machine.Bind(args[1], position)
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			for step := 0; ; step++ {
				if trace {
					fmt.Fprintf(out, "%d\t%v\n", step, state)
				}
				if state.Terminated() {
					break
				}
				state = machine.Step(state, e)
			}

			a.logger.Debug("halted", "enzyme", e.String(), "halt", state.Halt.String(), "pc", state.Pc)

			for _, output := range machine.Collect(state) {
				fmt.Fprintln(out, output)
			}
			return
		},
	}

	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "print the state after every step")

	return cmd
}
