package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/chartparse/grammar"
)

func newCheckCmd(a *app) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Load an EBNF grammar and print its rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load(args[0])
			if err != nil {
				return err
			}

			if start != "" {
				s, ok := g.Symbols().Lookup(start)
				if !ok || !g.IsNonterminal(s) {
					return fmt.Errorf("%s: start category %s has no rules", args[0], start)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, g)
			fmt.Fprintf(out, "%d rules, %d nonterminals, %d symbols, %d left corners\n",
				g.NumRules(), g.NumNonterminals(), g.Symbols().Len(), g.LeftCorners().Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", "", "require this category to have rules (if empty, only checks the grammar)")

	return cmd
}
