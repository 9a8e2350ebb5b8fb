package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/chartparse/sample"
)

func newDemoCmd(a *app) *cobra.Command {
	var pf parseFlags
	var df dumpFlags
	var n int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Recognize a generated sentence with the sample grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				return fmt.Errorf("n: must not be negative, got %d", n)
			}

			cfg := a.cfg
			cfg.Grammar = ""
			cfg.Start = sample.Start
			if err := pf.apply(cmd, &cfg); err != nil {
				return err
			}
			eng, err := cfg.NewEngine(sample.Grammar())
			if err != nil {
				return err
			}

			tokens := sample.Sentence(n)
			began := time.Now()
			chart := eng.Recognize(tokens)
			elapsed := time.Since(began)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sentence: %s\n", strings.Join(tokens, " "))
			fmt.Fprintf(out, "Engine: %s (%s)\n", eng.Name(), cfg.Order)
			fmt.Fprintf(out, "Success: %t\n", chart.Success(cfg.Start, 0))
			fmt.Fprintf(out, "Edges: %d\n", chart.EdgeCount())
			fmt.Fprintf(out, "Time: %s\n", elapsed)
			if df.dump {
				return chart.Dump(out, df.options(cmd, cfg))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "n", "n", 3, "number of prepositional phrases after the first five words")
	pf.register(cmd, false)
	df.register(cmd)

	return cmd
}
