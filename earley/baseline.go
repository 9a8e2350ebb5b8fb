package earley

import "github.com/dhamidi/chartparse/grammar"

// Baseline is the plain worklist recognizer.
type Baseline struct {
	grammar *grammar.Grammar
	opts    options
}

// NewBaseline returns a baseline engine for g.
func NewBaseline(g *grammar.Grammar, opts ...Option) *Baseline {
	return &Baseline{grammar: g, opts: newOptions(opts)}
}

func (p *Baseline) Name() string {
	return BaselineName
}

// Recognize builds the chart for tokens, left to right. Position k only
// reads the finished buckets before it and its own bucket.
func (p *Baseline) Recognize(tokens []string) *Chart {
	chart := newChart(p.grammar, tokens)
	syms := chart.tokenSymbols()
	rules := p.grammar.Rules()

	buckets := make([]*edgeSet, len(tokens)+1)
	buckets[0] = newEdgeSet()
	work := newAgenda(p.opts.order)

	for k := 1; k <= len(tokens); k++ {
		cur := newEdgeSet()
		work.push(scanned(k, syms[k-1]))

		for edge, ok := work.pop(); ok; edge, ok = work.pop() {
			// Edges already in the bucket are not expanded again; nothing
			// else stops the loop.
			if !cur.add(edge) || !edge.Passive() {
				continue
			}

			// Predict
			for i, r := range rules {
				if r.RHS[0] == edge.LHS {
					work.push(predicted(edge, i, r))
				}
			}

			// Complete
			for _, e := range buckets[edge.Start].edges {
				if !e.Passive() && e.Next() == edge.LHS {
					work.push(e.advance(k))
				}
			}
		}

		buckets[k] = cur
		passive := cur.passive()
		p.opts.trace(BaselineName, k, len(cur.edges), len(passive))
		chart.publish(k, passive)
	}

	p.opts.done(BaselineName, chart)
	return chart
}
