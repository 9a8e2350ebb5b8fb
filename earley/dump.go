package earley

import (
	"fmt"
	"io"
	"strings"
)

// DumpOptions controls Chart.Dump.
type DumpOptions struct {
	// Cutoff limits the edges printed per bucket. Zero prints all of them.
	Cutoff int
	// Buckets restricts output to these bucket indices. Negative indices
	// count from the end, so -1 is the last bucket. Empty means all buckets.
	Buckets []int
}

// Dump writes the non-empty buckets of c and their edges to w.
func (c *Chart) Dump(w io.Writer, opts DumpOptions) error {
	show := c.selectBuckets(opts.Buckets)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Chart size: %d edges\n", c.EdgeCount())
	for k, bucket := range c.buckets {
		if len(bucket) == 0 || (show != nil && !show[k]) {
			continue
		}
		fmt.Fprintf(&sb, "%d edges ending in position %d:\n", len(bucket), k)
		for i, e := range bucket {
			if opts.Cutoff > 0 && i == opts.Cutoff {
				fmt.Fprintf(&sb, "    ... (%d more)\n", len(bucket)-i)
				break
			}
			fmt.Fprintf(&sb, "    %s\n", c.FormatEdge(e))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// selectBuckets resolves the bucket filter. A nil result selects everything.
func (c *Chart) selectBuckets(indices []int) map[int]bool {
	if len(indices) == 0 {
		return nil
	}
	show := make(map[int]bool, len(indices))
	for _, k := range indices {
		if k < 0 {
			k += len(c.buckets)
		}
		if k >= 0 && k < len(c.buckets) {
			show[k] = true
		}
	}
	return show
}
