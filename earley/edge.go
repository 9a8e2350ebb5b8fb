package earley

import "github.com/dhamidi/chartparse/grammar"

// Edge is a dotted item over the input span [Start, End). The first Dot
// symbols of RHS have been matched. A scanned token is an edge whose LHS is
// the token and whose RHS is empty.
//
// Edges are values: advancing the dot makes a new edge. Edges published in a
// Chart own their RHS; inside the engines RHS is the grammar's rule storage.
type Edge struct {
	Start, End int
	LHS        grammar.Symbol
	RHS        []grammar.Symbol
	Dot        int

	rule int // grammar rule index, -1 for scanned tokens
}

// Passive reports whether every symbol of RHS has been matched.
func (e Edge) Passive() bool {
	return e.Dot == len(e.RHS)
}

// Next returns the symbol after the dot. It must only be called on active edges.
func (e Edge) Next() grammar.Symbol {
	return e.RHS[e.Dot]
}

// Rule returns the index of the grammar rule the edge was built from, or -1
// for a scanned token.
func (e Edge) Rule() int {
	return e.rule
}

// edgeKey is the structural identity of an edge. The grammar holds no
// duplicate rules, so the rule index stands in for RHS.
type edgeKey struct {
	start, end int
	lhs        grammar.Symbol
	rule, dot  int
}

func (e Edge) key() edgeKey {
	return edgeKey{e.Start, e.End, e.LHS, e.rule, e.Dot}
}

func scanned(k int, tok grammar.Symbol) Edge {
	return Edge{Start: k - 1, End: k, LHS: tok, rule: -1}
}

// predicted starts rule i over the span of the passive edge that is its left corner.
func predicted(corner Edge, i int, r grammar.Rule) Edge {
	return Edge{Start: corner.Start, End: corner.End, LHS: r.LHS, RHS: r.RHS, Dot: 1, rule: i}
}

func (e Edge) advance(end int) Edge {
	return Edge{Start: e.Start, End: end, LHS: e.LHS, RHS: e.RHS, Dot: e.Dot + 1, rule: e.rule}
}

// edgeSet is an insertion-ordered set of edges.
type edgeSet struct {
	edges []Edge
	seen  map[edgeKey]struct{}
}

func newEdgeSet() *edgeSet {
	return &edgeSet{seen: make(map[edgeKey]struct{})}
}

// add records e and reports whether it was new.
func (s *edgeSet) add(e Edge) bool {
	k := e.key()
	if _, ok := s.seen[k]; ok {
		return false
	}
	s.seen[k] = struct{}{}
	s.edges = append(s.edges, e)
	return true
}

func (s *edgeSet) passive() []Edge {
	var out []Edge
	for _, e := range s.edges {
		if e.Passive() {
			out = append(out, e)
		}
	}
	return out
}
