package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dhamidi/chartparse/config"
	"github.com/dhamidi/chartparse/earley"
	"github.com/dhamidi/chartparse/grammar"
	"github.com/dhamidi/chartparse/sample"
)

// engineValue is a pflag.Value restricted to the known engine names.
type engineValue string

var _ pflag.Value = (*engineValue)(nil)

func (v *engineValue) String() string { return string(*v) }
func (v *engineValue) Type() string   { return "engine" }

func (v *engineValue) Set(s string) error {
	for _, name := range earley.EngineNames {
		if s == name {
			*v = engineValue(s)
			return nil
		}
	}
	return fmt.Errorf("expected one of %s", strings.Join(earley.EngineNames, ", "))
}

// orderValue is a pflag.Value holding an agenda discipline.
type orderValue string

var _ pflag.Value = (*orderValue)(nil)

func (v *orderValue) String() string { return string(*v) }
func (v *orderValue) Type() string   { return "order" }

func (v *orderValue) Set(s string) error {
	o, err := earley.ParseOrder(s)
	if err != nil {
		return err
	}
	*v = orderValue(o.String())
	return nil
}

// parseFlags are the grammar and engine flags shared by the commands that
// recognize sentences.
type parseFlags struct {
	grammar string
	start   string
	engine  engineValue
	order   orderValue
}

func (f *parseFlags) register(cmd *cobra.Command, withGrammar bool) {
	if withGrammar {
		cmd.Flags().StringVarP(&f.grammar, "grammar", "g", "", "EBNF grammar file (default: the built-in sample grammar)")
		cmd.Flags().StringVarP(&f.start, "start", "s", "S", "start category")
	}
	cmd.Flags().VarP(&f.engine, "engine", "e", "recognizer: "+strings.Join(earley.EngineNames, " or "))
	cmd.Flags().Var(&f.order, "order", "agenda discipline: lifo or fifo")
}

// apply copies the flags the user set over cfg.
func (f *parseFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("grammar") {
		cfg.Grammar = f.grammar
	}
	if flags.Changed("start") {
		cfg.Start = f.start
	}
	if flags.Changed("engine") {
		cfg.Engine = string(f.engine)
	}
	if flags.Changed("order") {
		cfg.Order = string(f.order)
	}
	return cfg.Validate()
}

// loadGrammar reads the configured grammar file, or returns the sample
// grammar when none is configured.
func (a *app) loadGrammar(cfg config.Config) (*grammar.Grammar, error) {
	if cfg.Grammar == "" {
		a.log.Infof("no grammar file given, using the sample grammar")
		return sample.Grammar(), nil
	}
	g, err := grammar.Load(cfg.Grammar)
	if err != nil {
		return nil, err
	}
	a.log.Infof("loaded %s: %d rules, %d nonterminals", cfg.Grammar, g.NumRules(), g.NumNonterminals())
	return g, nil
}

// engine resolves the parse flags against the config and builds the engine.
func (a *app) engine(cmd *cobra.Command, f *parseFlags) (earley.Engine, config.Config, error) {
	cfg := a.cfg
	if err := f.apply(cmd, &cfg); err != nil {
		return nil, cfg, err
	}
	g, err := a.loadGrammar(cfg)
	if err != nil {
		return nil, cfg, err
	}
	if _, ok := g.Symbols().Lookup(cfg.Start); !ok {
		a.log.Warningf("start category %s does not occur in the grammar", cfg.Start)
	}
	eng, err := cfg.NewEngine(g)
	if err != nil {
		return nil, cfg, err
	}
	return eng, cfg, nil
}

// dumpFlags control printing of the chart.
type dumpFlags struct {
	dump    bool
	cutoff  int
	buckets []int
}

func (f *dumpFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.dump, "dump", false, "print the chart")
	cmd.Flags().IntVar(&f.cutoff, "cutoff", 0, "print at most this many edges per bucket (0 prints all)")
	cmd.Flags().IntSliceVar(&f.buckets, "bucket", nil, "print only this bucket, negative counts from the end (repeatable)")
}

func (f *dumpFlags) options(cmd *cobra.Command, cfg config.Config) earley.DumpOptions {
	opts := cfg.DumpOptions()
	if cmd.Flags().Changed("cutoff") {
		opts.Cutoff = f.cutoff
	}
	if cmd.Flags().Changed("bucket") {
		opts.Buckets = f.buckets
	}
	return opts
}
