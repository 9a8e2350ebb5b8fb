package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type batchLine struct {
	number int
	tokens []string
	ok     bool
}

func newBatchCmd(a *app) *cobra.Command {
	var pf parseFlags
	var jobs int

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Recognize every line of a file as one sentence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cfg, err := a.engine(cmd, &pf)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("jobs") {
				if jobs < 1 {
					return fmt.Errorf("jobs: must be at least 1, got %d", jobs)
				}
				cfg.Jobs = jobs
			}

			lines, err := readSentences(args[0])
			if err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(cfg.Jobs)
			for i := range lines {
				line := &lines[i]
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					line.ok = eng.Recognize(line.tokens).Success(cfg.Start, 0)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			accepted := 0
			for _, line := range lines {
				verdict := "no"
				if line.ok {
					verdict = "ok"
					accepted++
				}
				fmt.Fprintf(out, "%d: %s\n", line.number, verdict)
			}
			a.log.Infof("%s: %d of %d sentences recognized with %d jobs", args[0], accepted, len(lines), cfg.Jobs)
			return nil
		},
	}

	pf.register(cmd, true)
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of sentences recognized at once (default: number of CPUs)")

	return cmd
}

// readSentences returns the non-empty lines of name, numbered from 1.
func readSentences(name string) ([]batchLine, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open sentences: %w", err)
	}
	defer f.Close()

	var lines []batchLine
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		if tokens := strings.Fields(scanner.Text()); len(tokens) > 0 {
			lines = append(lines, batchLine{number: n, tokens: tokens})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sentences: %w", err)
	}
	return lines, nil
}
