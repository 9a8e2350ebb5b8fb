package earley

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dhamidi/chartparse/grammar"
)

// Chart holds the passive edges found by a recognizer, one bucket per input
// boundary. Bucket k holds the edges ending at position k; bucket 0 is
// always empty.
type Chart struct {
	symbols *grammar.SymbolTable
	tokens  []string
	buckets [][]Edge
}

func newChart(g *grammar.Grammar, tokens []string) *Chart {
	return &Chart{
		symbols: g.Symbols(),
		tokens:  append([]string(nil), tokens...),
		buckets: make([][]Edge, len(tokens)+1),
	}
}

// tokenSymbols interns the input against the grammar. Tokens the grammar
// does not know get a negative symbol derived from their position, so they
// never match a rule.
func (c *Chart) tokenSymbols() []grammar.Symbol {
	syms := make([]grammar.Symbol, len(c.tokens))
	for i, tok := range c.tokens {
		if s, ok := c.symbols.Lookup(tok); ok {
			syms[i] = s
		} else {
			syms[i] = grammar.Symbol(-(i + 1))
		}
	}
	return syms
}

// publish stores the passive edges of bucket k in display order. Each edge
// gets its own copy of RHS so the chart never shares storage with the grammar.
func (c *Chart) publish(k int, edges []Edge) {
	for i := range edges {
		if len(edges[i].RHS) > 0 {
			edges[i].RHS = append([]grammar.Symbol(nil), edges[i].RHS...)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		if a.LHS != b.LHS {
			return a.LHS < b.LHS
		}
		if a.rule != b.rule {
			return a.rule < b.rule
		}
		return a.Dot < b.Dot
	})
	c.buckets[k] = edges
}

// Len returns the number of buckets, one more than the number of tokens.
func (c *Chart) Len() int {
	return len(c.buckets)
}

// Bucket returns the passive edges ending at position k.
func (c *Chart) Bucket(k int) []Edge {
	return c.buckets[k]
}

// Tokens returns the recognized input.
func (c *Chart) Tokens() []string {
	return c.tokens
}

// EdgeCount returns the total number of edges in all buckets.
func (c *Chart) EdgeCount() int {
	n := 0
	for _, b := range c.buckets {
		n += len(b)
	}
	return n
}

// Success reports whether the input from position start to the end derives
// category.
func (c *Chart) Success(category string, start int) bool {
	if start < 0 {
		return false
	}
	return len(c.Find(len(c.buckets)-1, category, start)) > 0
}

// Find returns the edges of bucket k with the given left-hand side that start
// at start. A negative start matches any start.
func (c *Chart) Find(k int, lhs string, start int) []Edge {
	if k < 0 || k >= len(c.buckets) {
		return nil
	}
	sym, known := c.symbols.Lookup(lhs)
	var out []Edge
	for _, e := range c.buckets[k] {
		if !e.Passive() || (start >= 0 && e.Start != start) {
			continue
		}
		// Tokens the grammar does not know are matched by spelling.
		if (known && e.LHS == sym) || (!known && e.LHS < 0 && c.Name(e.LHS) == lhs) {
			out = append(out, e)
		}
	}
	return out
}

// Name returns the text of s, including tokens unknown to the grammar.
func (c *Chart) Name(s grammar.Symbol) string {
	if s < 0 {
		if i := int(-s) - 1; i < len(c.tokens) {
			return c.tokens[i]
		}
	}
	return c.symbols.Name(s)
}

// FormatEdge renders e as "[start-end: LHS --> matched . expected]".
func (c *Chart) FormatEdge(e Edge) string {
	parts := []string{c.Name(e.LHS), "-->"}
	for i, s := range e.RHS {
		if i == e.Dot {
			parts = append(parts, ".")
		}
		parts = append(parts, c.Name(s))
	}
	if e.Passive() {
		parts = append(parts, ".")
	}
	return fmt.Sprintf("[%d-%d: %s]", e.Start, e.End, strings.Join(parts, " "))
}

// Equal reports whether c and other hold the same edges. Both charts must
// come from the same grammar.
func (c *Chart) Equal(other *Chart) bool {
	if len(c.buckets) != len(other.buckets) {
		return false
	}
	for k, bucket := range c.buckets {
		if len(bucket) != len(other.buckets[k]) {
			return false
		}
		for i, e := range bucket {
			if e.key() != other.buckets[k][i].key() {
				return false
			}
		}
	}
	return true
}
