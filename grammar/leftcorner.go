package grammar

// LeftCornerIndex maps a symbol to the rules whose right-hand side starts
// with it.
type LeftCornerIndex struct {
	byFirst [][]int
	corners int
}

func newLeftCornerIndex(g *Grammar) *LeftCornerIndex {
	idx := &LeftCornerIndex{byFirst: make([][]int, g.symbols.Len())}
	for i, r := range g.rules {
		first := r.RHS[0]
		if idx.byFirst[first] == nil {
			idx.corners++
		}
		idx.byFirst[first] = append(idx.byFirst[first], i)
	}
	return idx
}

// Rules returns the indices of the rules with left corner s, in grammar order.
func (idx *LeftCornerIndex) Rules(s Symbol) []int {
	if s < 0 || int(s) >= len(idx.byFirst) {
		return nil
	}
	return idx.byFirst[s]
}

// Len returns the number of distinct left corners.
func (idx *LeftCornerIndex) Len() int {
	return idx.corners
}
