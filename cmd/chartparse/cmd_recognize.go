package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newRecognizeCmd(a *app) *cobra.Command {
	var pf parseFlags
	var df dumpFlags

	cmd := &cobra.Command{
		Use:   "recognize [word...]",
		Short: "Report whether a sentence derives from the start category",
		Long: `Recognize the words given as arguments, or the whitespace separated
words read from standard input when there are none. Prints true or false.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cfg, err := a.engine(cmd, &pf)
			if err != nil {
				return err
			}

			tokens := args
			if len(tokens) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				tokens = strings.Fields(string(data))
			}

			chart := eng.Recognize(tokens)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, chart.Success(cfg.Start, 0))
			if df.dump {
				if err := chart.Dump(out, df.options(cmd, cfg)); err != nil {
					return fmt.Errorf("dump chart: %w", err)
				}
			}
			return nil
		},
	}

	pf.register(cmd, true)
	df.register(cmd)

	return cmd
}
