package grammar

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderInternsSymbols(t *testing.T) {
	g, err := NewBuilder().
		Add("S", "NP", "VP").
		Add("NP", "the", "N").
		Add("N", "lion").
		Add("VP", "sees").
		Build()
	require.NoError(t, err)

	require.Equal(t, 4, g.NumRules())
	require.Equal(t, 7, g.Symbols().Len())

	np, ok := g.Symbols().Lookup("NP")
	require.True(t, ok)
	require.Equal(t, "NP", g.Symbols().Name(np))
	require.Equal(t, np, g.Rule(0).RHS[0])
	require.Equal(t, np, g.Rule(1).LHS)

	_, ok = g.Symbols().Lookup("zebra")
	require.False(t, ok)
	require.Equal(t, "#-3", g.Symbols().Name(-3))
}

func TestBuilderDropsDuplicates(t *testing.T) {
	g, err := NewBuilder().
		Add("S", "a").
		Add("S", "a", "b").
		Add("S", "a").
		Build()
	require.NoError(t, err)
	require.Equal(t, 2, g.NumRules())
	require.Equal(t, "S --> a\nS --> a b\n", g.String())
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name   string
		build  func(*Builder) *Builder
		reason string
	}{
		{"empty rhs", func(b *Builder) *Builder { return b.Add("S", "a").Add("A") }, "empty right-hand side"},
		{"empty lhs", func(b *Builder) *Builder { return b.Add("", "a") }, "empty left-hand side"},
		{"empty symbol", func(b *Builder) *Builder { return b.Add("S", "a", "") }, "empty symbol"},
		{"no rules", func(b *Builder) *Builder { return b }, "no rules"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := tt.build(NewBuilder()).Build()
			require.Nil(t, g)

			var gerr *GrammarError
			require.True(t, errors.As(err, &gerr), "got %v", err)
			require.Contains(t, gerr.Error(), tt.reason)
		})
	}
}

func TestBuilderKeepsFirstError(t *testing.T) {
	_, err := NewBuilder().Add("A").Add("", "x").Build()
	var gerr *GrammarError
	require.True(t, errors.As(err, &gerr))
	require.Equal(t, 0, gerr.Rule)
	require.Equal(t, "grammar: rule 0 (A): empty right-hand side", gerr.Error())
}

func TestBuilderIsReusable(t *testing.T) {
	b := NewBuilder()
	first, err := b.Add("S", "a").Build()
	require.NoError(t, err)

	second, err := b.Add("T", "b").Build()
	require.NoError(t, err)

	require.Equal(t, "S --> a\n", first.String())
	require.Equal(t, "T --> b\n", second.String())
	_, ok := first.Symbols().Lookup("T")
	require.False(t, ok)
}

func TestNonterminals(t *testing.T) {
	g, err := NewBuilder().Add("S", "A", "x").Add("A", "y").Build()
	require.NoError(t, err)

	for name, want := range map[string]bool{"S": true, "A": true, "x": false, "y": false} {
		s, ok := g.Symbols().Lookup(name)
		require.True(t, ok)
		require.Equal(t, want, g.IsNonterminal(s), name)
	}
	require.False(t, g.IsNonterminal(-1))
	require.Equal(t, 2, g.NumNonterminals())
}

func TestLeftCorners(t *testing.T) {
	g, err := NewBuilder().
		Add("S", "NP", "VP").
		Add("NP", "Det", "Noun").
		Add("NP", "NP", "PP").
		Add("VP", "Verb").
		Add("VP", "VP", "PP").
		Add("PP", "Prep", "NP").
		Build()
	require.NoError(t, err)

	idx := g.LeftCorners()
	lookup := func(name string) []int {
		s, ok := g.Symbols().Lookup(name)
		require.True(t, ok, name)
		return idx.Rules(s)
	}

	require.Equal(t, []int{0, 2}, lookup("NP"))
	require.Equal(t, []int{1}, lookup("Det"))
	require.Equal(t, []int{4}, lookup("VP"))
	require.Empty(t, lookup("PP"))
	require.Empty(t, lookup("Noun"))
	require.Nil(t, idx.Rules(-1))
	require.Equal(t, 5, idx.Len())

	require.Same(t, idx, g.LeftCorners())
}

func TestLeftCornersConcurrentBuild(t *testing.T) {
	g, err := NewBuilder().Add("S", "a").Add("S", "S", "a").Build()
	require.NoError(t, err)

	var wg sync.WaitGroup
	got := make([]*LeftCornerIndex, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = g.LeftCorners()
		}(i)
	}
	wg.Wait()
	for _, idx := range got {
		require.Same(t, got[0], idx)
	}
}

func TestFormatRule(t *testing.T) {
	g, err := NewBuilder().Add("VP", "Verb", "NP").Build()
	require.NoError(t, err)
	require.Equal(t, "VP --> Verb NP", g.FormatRule(0))
	require.True(t, strings.HasSuffix(g.String(), "\n"))
}
