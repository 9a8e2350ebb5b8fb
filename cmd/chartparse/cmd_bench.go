package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/cheynewallace/tabby"
	"github.com/spf13/cobra"

	"github.com/dhamidi/chartparse/earley"
	"github.com/dhamidi/chartparse/sample"
)

func newBenchCmd(a *app) *cobra.Command {
	var pf parseFlags
	var maxN, repeat int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time both recognizers on ever longer sample sentences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxN < 0 {
				return fmt.Errorf("max: must not be negative, got %d", maxN)
			}
			if repeat < 1 {
				return fmt.Errorf("repeat: must be at least 1, got %d", repeat)
			}

			cfg := a.cfg
			if err := pf.apply(cmd, &cfg); err != nil {
				return err
			}
			order, err := earley.ParseOrder(cfg.Order)
			if err != nil {
				return err
			}
			g := sample.Grammar()
			base := earley.NewBaseline(g, earley.WithOrder(order))
			lc := earley.NewLeftCorner(g, earley.WithOrder(order))

			t := tabby.NewCustom(tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0))
			t.AddHeader("N", "WORDS", "EDGES", earley.BaselineName, earley.LeftCornerName, "SPEEDUP", "SAME")

			mismatches := 0
			for n := 0; n <= maxN; n++ {
				tokens := sample.Sentence(n)
				baseChart, baseTime := timeEngine(base, tokens, repeat)
				lcChart, lcTime := timeEngine(lc, tokens, repeat)

				same := baseChart.Equal(lcChart)
				if !same {
					mismatches++
					a.log.Errorf("engines disagree on %d words", len(tokens))
				}
				t.AddLine(n, len(tokens), baseChart.EdgeCount(),
					baseTime.Round(time.Microsecond), lcTime.Round(time.Microsecond),
					speedup(baseTime, lcTime), same)
			}
			t.Print()

			if mismatches > 0 {
				return fmt.Errorf("engines disagree on %d of %d sentences", mismatches, maxN+1)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxN, "max", 6, "longest sample sentence, in prepositional phrases")
	cmd.Flags().IntVar(&repeat, "repeat", 3, "runs per sentence and engine, the fastest is reported")
	cmd.Flags().Var(&pf.order, "order", "agenda discipline: lifo or fifo")

	return cmd
}

// timeEngine recognizes tokens repeat times and returns the last chart and
// the fastest run.
func timeEngine(eng earley.Engine, tokens []string, repeat int) (*earley.Chart, time.Duration) {
	var chart *earley.Chart
	best := time.Duration(-1)
	for i := 0; i < repeat; i++ {
		began := time.Now()
		chart = eng.Recognize(tokens)
		if d := time.Since(began); best < 0 || d < best {
			best = d
		}
	}
	return chart, best
}

func speedup(base, lc time.Duration) string {
	if lc <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fx", float64(base)/float64(lc))
}
