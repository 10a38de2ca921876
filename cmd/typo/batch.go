package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/typo/batch"
	"github.com/ezrec/typo/enzyme"
)

// lanes is a parsed lane file.
type lanes struct {
	enzymes   []enzyme.Enzyme
	targets   []string
	positions []int
}

// readLanes parses one "ENZYME TARGET POSITION" lane per line. Blank lines
// and lines starting with '#' are skipped.
func readLanes(r io.Reader) (l lanes, err error) {
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		words := strings.Fields(line)
		if len(words) != 3 {
			err = ErrLaneLine{Line: lineno, Text: line}
			return
		}

		var e enzyme.Enzyme
		e, err = enzyme.ParseEnzyme(words[0])
		if err != nil {
			err = ErrLaneLine{Line: lineno, Text: line, Err: err}
			return
		}

		var position int
		position, err = strconv.Atoi(words[2])
		if err != nil {
			err = ErrLaneLine{Line: lineno, Text: line, Err: err}
			return
		}

		l.enzymes = append(l.enzymes, e)
		l.targets = append(l.targets, words[1])
		l.positions = append(l.positions, position)
	}

	err = scanner.Err()
	return
}

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Run many enzyme lanes on the batched interpreter",
		Long: `Read one "ENZYME TARGET POSITION" lane per line from FILE (or stdin when
FILE is absent or '-') and print each lane's outputs on one line, in input
order. With --verbose the lanes run as a single batch and each lane's halt
reason and overflow flags are reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				var inf *os.File
				inf, err = os.Open(args[0])
				if err != nil {
					return
				}
				defer inf.Close()
				in = inf
			}

			l, err := readLanes(in)
			if err != nil {
				return
			}

			metrics, err := a.metrics()
			if err != nil {
				return
			}

			cfg, workers := a.batchConfig()
			out := cmd.OutOrStdout()

			if !a.config.Verbose {
				var results [][]string
				results, err = batch.ExecuteParallel(cmd.Context(), cfg, workers, metrics, l.enzymes, l.targets, l.positions)
				if err != nil {
					return
				}
				for _, outputs := range results {
					fmt.Fprintln(out, strings.Join(outputs, " "))
				}
				return
			}

			b, err := batch.NewBatch(cfg, l.enzymes, l.targets, l.positions)
			if err != nil {
				return
			}
			b.Verbose = true
			b.Logger = a.logger
			b.Metrics = metrics
			b.Run()

			a.logger.Info("batch done", "lanes", b.Lanes(), "ticks", b.Ticks(), "capacity", b.Capacity(), "slots", b.Slots())

			for lane, outputs := range b.Results() {
				fmt.Fprintf(out, "%s\t%v\t%v\n", strings.Join(outputs, " "), b.Halt(lane), b.Overflow(lane))
			}
			return
		},
	}

	return cmd
}
