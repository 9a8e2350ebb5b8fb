package earley

import "github.com/dhamidi/chartparse/grammar"

// LeftCorner is the recognizer that uses the grammar's left-corner index.
type LeftCorner struct {
	grammar *grammar.Grammar
	index   *grammar.LeftCornerIndex
	opts    options
}

// NewLeftCorner returns a left-corner engine for g. The index is shared with
// every other engine built from g.
func NewLeftCorner(g *grammar.Grammar, opts ...Option) *LeftCorner {
	return &LeftCorner{grammar: g, index: g.LeftCorners(), opts: newOptions(opts)}
}

func (p *LeftCorner) Name() string {
	return LeftCornerName
}

// cornerKey partitions a bucket. Passive edges share the zero key; active
// edges are keyed by the symbol after their dot.
type cornerKey struct {
	active bool
	next   grammar.Symbol
}

func keyOf(e Edge) cornerKey {
	if e.Passive() {
		return cornerKey{}
	}
	return cornerKey{active: true, next: e.Next()}
}

type cornerBucket map[cornerKey]*edgeSet

func (b cornerBucket) set(k cornerKey) *edgeSet {
	s := b[k]
	if s == nil {
		s = newEdgeSet()
		b[k] = s
	}
	return s
}

func (b cornerBucket) size() int {
	n := 0
	for _, s := range b {
		n += len(s.edges)
	}
	return n
}

// Recognize builds the chart for tokens. It follows Baseline but only visits
// rules whose left corner was just completed and edges waiting for it.
func (p *LeftCorner) Recognize(tokens []string) *Chart {
	chart := newChart(p.grammar, tokens)
	syms := chart.tokenSymbols()

	buckets := make([]cornerBucket, len(tokens)+1)
	buckets[0] = cornerBucket{}
	work := newAgenda(p.opts.order)

	for k := 1; k <= len(tokens); k++ {
		cur := cornerBucket{}
		work.push(scanned(k, syms[k-1]))

		for edge, ok := work.pop(); ok; edge, ok = work.pop() {
			if !cur.set(keyOf(edge)).add(edge) || !edge.Passive() {
				continue
			}

			// Predict
			for _, i := range p.index.Rules(edge.LHS) {
				work.push(predicted(edge, i, p.grammar.Rule(i)))
			}

			// Complete
			if waiting := buckets[edge.Start][cornerKey{active: true, next: edge.LHS}]; waiting != nil {
				for _, e := range waiting.edges {
					work.push(e.advance(k))
				}
			}
		}

		buckets[k] = cur
		var passive []Edge
		if s := cur[cornerKey{}]; s != nil {
			passive = s.edges
		}
		p.opts.trace(LeftCornerName, k, cur.size(), len(passive))
		chart.publish(k, passive)
	}

	p.opts.done(LeftCornerName, chart)
	return chart
}
