package grammar

import (
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/exp/ebnf"
)

// Load reads an EBNF grammar from a file. See Parse.
func Load(filename string) (*Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return Parse(filename, f)
}

// Parse reads a grammar in the notation of golang.org/x/exp/ebnf.
//
// Every alternative of a production becomes one rule. Quoted tokens are
// terminals with the quoted spelling; a name is a nonterminal when it has a
// production of its own and a terminal otherwise. Parenthesised groups are
// lifted into fresh nonterminals. Options, repetitions, ranges and empty
// alternatives are rejected, since they derive the empty string or single
// characters.
func Parse(filename string, r io.Reader) (*Grammar, error) {
	eg, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}

	c := &converter{b: NewBuilder(), taken: make(map[string]bool, len(eg))}
	names := make([]string, 0, len(eg))
	for name := range eg {
		names = append(names, name)
		c.taken[name] = true
	}
	// Source order keeps rule indices stable across loads.
	sort.Slice(names, func(i, j int) bool {
		return eg[names[i]].Name.StringPos.Offset < eg[names[j]].Name.StringPos.Offset
	})

	for _, name := range names {
		prod := eg[name]
		if prod.Expr == nil {
			return nil, &GrammarError{Pos: prod.Name.StringPos.String(), Rule: -1, LHS: name, Reason: "empty production"}
		}
		if err := c.production(name, prod.Name.StringPos.String(), prod.Expr); err != nil {
			return nil, err
		}
	}
	return c.b.Build()
}

type converter struct {
	b      *Builder
	groups int
	taken  map[string]bool // production and group names in use
}

// groupName returns a nonterminal name for the next group of lhs that no
// production or earlier group uses.
func (c *converter) groupName(lhs string) string {
	for {
		c.groups++
		name := fmt.Sprintf("%s_group%d", lhs, c.groups)
		if !c.taken[name] {
			c.taken[name] = true
			return name
		}
	}
}

// production adds one rule per alternative of expr.
func (c *converter) production(lhs, pos string, expr ebnf.Expression) error {
	alts, ok := expr.(ebnf.Alternative)
	if !ok {
		alts = ebnf.Alternative{expr}
	}
	for _, alt := range alts {
		if alt == nil {
			return &GrammarError{Pos: pos, Rule: -1, LHS: lhs, Reason: "empty alternative"}
		}
		rhs, err := c.sequence(lhs, alt)
		if err != nil {
			return err
		}
		c.b.Add(lhs, rhs...)
	}
	return nil
}

// sequence flattens one alternative into symbol names.
func (c *converter) sequence(lhs string, expr ebnf.Expression) ([]string, error) {
	items, ok := expr.(ebnf.Sequence)
	if !ok {
		items = ebnf.Sequence{expr}
	}

	rhs := make([]string, 0, len(items))
	for _, item := range items {
		switch e := item.(type) {
		case *ebnf.Name:
			rhs = append(rhs, e.String)
		case *ebnf.Token:
			if e.String == "" {
				return nil, c.unsupported(lhs, e, "empty token")
			}
			rhs = append(rhs, e.String)
		case *ebnf.Group:
			if e.Body == nil {
				return nil, c.unsupported(lhs, e, "empty group")
			}
			name := c.groupName(lhs)
			if err := c.production(name, e.Pos().String(), e.Body); err != nil {
				return nil, err
			}
			rhs = append(rhs, name)
		case *ebnf.Option:
			return nil, c.unsupported(lhs, e, "optional part derives the empty string")
		case *ebnf.Repetition:
			return nil, c.unsupported(lhs, e, "repetition derives the empty string")
		case *ebnf.Range:
			return nil, c.unsupported(lhs, e, "character ranges are not supported")
		case ebnf.Alternative:
			return nil, c.unsupported(lhs, e, "nested alternative outside a group")
		default:
			return nil, c.unsupported(lhs, item, fmt.Sprintf("unsupported expression %T", item))
		}
	}
	return rhs, nil
}

func (c *converter) unsupported(lhs string, expr ebnf.Expression, reason string) error {
	return &GrammarError{Pos: expr.Pos().String(), Rule: -1, LHS: lhs, Reason: reason}
}
