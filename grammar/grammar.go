// Package grammar holds the context-free grammars the chart recognizers run
// on: interned symbols, rules, the left-corner index and an EBNF loader.
package grammar

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// Rule rewrites LHS into the symbol sequence RHS. RHS is never empty.
type Rule struct {
	LHS Symbol
	RHS []Symbol
}

// Grammar is an immutable rule set. It is safe to share between goroutines.
type Grammar struct {
	symbols      *SymbolTable
	rules        []Rule
	nonterminals *bitset.BitSet

	lcOnce sync.Once
	lc     *LeftCornerIndex
}

// Builder collects rules for a Grammar. The first error encountered is kept
// and reported by Build.
type Builder struct {
	symbols *SymbolTable
	rules   []Rule
	seen    map[string]struct{}
	added   int
	err     error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		symbols: newSymbolTable(),
		seen:    make(map[string]struct{}),
	}
}

// Add appends the rule lhs → rhs. Exact duplicates of earlier rules are dropped.
func (b *Builder) Add(lhs string, rhs ...string) *Builder {
	n := b.added
	b.added++
	if b.err != nil {
		return b
	}
	if lhs == "" {
		b.err = &GrammarError{Rule: n, Reason: "empty left-hand side"}
		return b
	}
	if len(rhs) == 0 {
		b.err = &GrammarError{Rule: n, LHS: lhs, Reason: "empty right-hand side"}
		return b
	}
	for _, s := range rhs {
		if s == "" {
			b.err = &GrammarError{Rule: n, LHS: lhs, Reason: "empty symbol in right-hand side"}
			return b
		}
	}

	key := lhs + "\x00" + strings.Join(rhs, "\x00")
	if _, dup := b.seen[key]; dup {
		return b
	}
	b.seen[key] = struct{}{}

	r := Rule{LHS: b.symbols.intern(lhs), RHS: make([]Symbol, len(rhs))}
	for i, s := range rhs {
		r.RHS[i] = b.symbols.intern(s)
	}
	b.rules = append(b.rules, r)
	return b
}

// Build returns the grammar, or the first error recorded by Add.
func (b *Builder) Build() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.rules) == 0 {
		return nil, &GrammarError{Rule: -1, Reason: "no rules"}
	}

	g := &Grammar{
		symbols:      b.symbols,
		rules:        b.rules,
		nonterminals: bitset.New(uint(b.symbols.Len())),
	}
	for _, r := range g.rules {
		g.nonterminals.Set(uint(r.LHS))
	}

	// The builder must not touch the grammar's storage after this point.
	b.symbols = newSymbolTable()
	b.rules = nil
	b.seen = make(map[string]struct{})
	b.added = 0
	return g, nil
}

// Symbols returns the grammar's symbol table.
func (g *Grammar) Symbols() *SymbolTable {
	return g.symbols
}

// Rules returns all rules in the order they were added. Callers must not
// modify the result.
func (g *Grammar) Rules() []Rule {
	return g.rules
}

// Rule returns rule i.
func (g *Grammar) Rule(i int) Rule {
	return g.rules[i]
}

// NumRules returns the number of rules.
func (g *Grammar) NumRules() int {
	return len(g.rules)
}

// IsNonterminal reports whether s is the left-hand side of some rule.
func (g *Grammar) IsNonterminal(s Symbol) bool {
	return s >= 0 && g.nonterminals.Test(uint(s))
}

// NumNonterminals returns the number of distinct left-hand sides.
func (g *Grammar) NumNonterminals() int {
	return int(g.nonterminals.Count())
}

// LeftCorners returns the left-corner index, building it on first use.
func (g *Grammar) LeftCorners() *LeftCornerIndex {
	g.lcOnce.Do(func() {
		g.lc = newLeftCornerIndex(g)
	})
	return g.lc
}

// FormatRule renders rule i as "LHS --> A B C".
func (g *Grammar) FormatRule(i int) string {
	r := g.rules[i]
	var sb strings.Builder
	sb.WriteString(g.symbols.Name(r.LHS))
	sb.WriteString(" -->")
	for _, s := range r.RHS {
		sb.WriteByte(' ')
		sb.WriteString(g.symbols.Name(s))
	}
	return sb.String()
}

func (g *Grammar) String() string {
	var sb strings.Builder
	for i := range g.rules {
		sb.WriteString(g.FormatRule(i))
		sb.WriteByte('\n')
	}
	return sb.String()
}
