// Package config loads chartparse settings from a TOML file.
package config

import (
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/dhamidi/chartparse/earley"
	"github.com/dhamidi/chartparse/grammar"
)

// Config holds the settings shared by the chartparse commands.
type Config struct {
	Grammar string `toml:"grammar"`
	Start   string `toml:"start"`
	Engine  string `toml:"engine"`
	Order   string `toml:"order"`
	Jobs    int    `toml:"jobs"`
	Dump    Dump   `toml:"dump"`
	Log     Log    `toml:"log"`
}

// Dump holds chart dump settings.
type Dump struct {
	Cutoff  int   `toml:"cutoff"`
	Buckets []int `toml:"buckets"`
}

// Log holds logging settings.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Start:  "S",
		Engine: earley.LeftCornerName,
		Order:  earley.LIFO.String(),
		Jobs:   runtime.NumCPU(),
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	c := Default()
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return c, fmt.Errorf("load config: unknown keys in %s: %v", path, undecoded)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks that every setting has a usable value.
func (c Config) Validate() error {
	if c.Start == "" {
		return fmt.Errorf("start: must not be empty")
	}
	if !knownEngine(c.Engine) {
		return fmt.Errorf("engine: unknown engine %q (expected one of %v)", c.Engine, earley.EngineNames)
	}
	if _, err := earley.ParseOrder(c.Order); err != nil {
		return fmt.Errorf("order: %w", err)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs: must be at least 1, got %d", c.Jobs)
	}
	if c.Dump.Cutoff < 0 {
		return fmt.Errorf("dump.cutoff: must not be negative, got %d", c.Dump.Cutoff)
	}
	return nil
}

func knownEngine(name string) bool {
	for _, n := range earley.EngineNames {
		if n == name {
			return true
		}
	}
	return false
}

// NewEngine builds the configured engine for g.
func (c Config) NewEngine(g *grammar.Grammar, opts ...earley.Option) (earley.Engine, error) {
	order, err := earley.ParseOrder(c.Order)
	if err != nil {
		return nil, err
	}
	return earley.EngineByName(c.Engine, g, append([]earley.Option{earley.WithOrder(order)}, opts...)...)
}

// DumpOptions returns the chart dump settings.
func (c Config) DumpOptions() earley.DumpOptions {
	return earley.DumpOptions{Cutoff: c.Dump.Cutoff, Buckets: c.Dump.Buckets}
}
