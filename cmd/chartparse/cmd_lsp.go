package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/chartparse/lsp"
)

func newLSPCmd(a *app) *cobra.Command {
	var pf parseFlags

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start a language server that checks one sentence per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if err := pf.apply(cmd, &cfg); err != nil {
				return err
			}
			g, err := a.loadGrammar(cfg)
			if err != nil {
				return err
			}
			eng, err := cfg.NewEngine(g)
			if err != nil {
				return err
			}
			server := lsp.NewServer(version, g, eng, cfg.Start)
			return server.RunStdio()
		},
	}

	pf.register(cmd, true)

	return cmd
}
