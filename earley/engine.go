// Package earley recognizes token sequences with Earley-style chart parsing.
//
// Two engines are provided. Baseline scans the whole rule set to predict and
// the whole origin bucket to complete. LeftCorner looks rules up by their
// first symbol and partitions buckets by the symbol active edges wait for.
// Both publish the same passive edges for the same input.
//
// Engines keep no per-parse state. One engine, and the grammar behind it,
// may serve any number of concurrent Recognize calls.
package earley

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/chartparse/grammar"
)

// Engine builds a chart for a token sequence.
type Engine interface {
	Name() string
	Recognize(tokens []string) *Chart
}

// Engine names accepted by EngineByName.
const (
	BaselineName   = "baseline"
	LeftCornerName = "leftcorner"
)

// EngineNames lists the known engines.
var EngineNames = []string{BaselineName, LeftCornerName}

// EngineByName returns the engine called name for g.
func EngineByName(name string, g *grammar.Grammar, opts ...Option) (Engine, error) {
	switch name {
	case BaselineName:
		return NewBaseline(g, opts...), nil
	case LeftCornerName, "left-corner", "indexed":
		return NewLeftCorner(g, opts...), nil
	}
	return nil, fmt.Errorf("unknown engine %q (expected %s or %s)", name, BaselineName, LeftCornerName)
}

// Option configures an engine.
type Option func(*options)

type options struct {
	order Order
	log   commonlog.Logger
}

// WithOrder sets the agenda discipline. The default is LIFO.
func WithOrder(o Order) Option {
	return func(opts *options) {
		opts.order = o
	}
}

// WithLogger replaces the "chartparse.earley" logger.
func WithLogger(log commonlog.Logger) Option {
	return func(opts *options) {
		opts.log = log
	}
}

func newOptions(opts []Option) options {
	o := options{order: LIFO}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = commonlog.GetLogger("chartparse.earley")
	}
	return o
}

func (o options) trace(engine string, k int, all, passive int) {
	if o.log.AllowLevel(commonlog.Debug) {
		o.log.Debugf("%s: position %d: %d edges, %d passive", engine, k, all, passive)
	}
}

func (o options) done(engine string, c *Chart) {
	o.log.Debugf("%s: %d tokens, %d passive edges", engine, len(c.tokens), c.EdgeCount())
}
