package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.starlark.net/starlark"

	"github.com/ezrec/typo/script"
)

func newScriptCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script FILE",
		Short: "Run a starlark script with the Typogenetics builtins",
		Long: `Run a starlark script. The builtins translate, bind_sites, execute, batch,
products, survivor, complement and reverse_complement are predeclared, and
load() resolves modules relative to the working directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			out := cmd.OutOrStdout()

			sc := &script.Script{
				Batch: a.config.Batch.Config,
				Print: func(msg string) {
					fmt.Fprintln(out, msg)
				},
			}
			sc.Load = func(module string) (globals starlark.StringDict, err error) {
				src, err := os.ReadFile(module)
				if err != nil {
					return
				}
				return sc.Exec(module, src)
			}

			src, err := os.ReadFile(args[0])
			if err != nil {
				return
			}

			globals, err := sc.Exec(args[0], src)
			if err != nil {
				return
			}

			a.logger.Debug("script done", "file", args[0], "globals", len(globals))
			return
		},
	}

	return cmd
}
