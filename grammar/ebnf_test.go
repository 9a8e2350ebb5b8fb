package grammar

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEBNF(t *testing.T) {
	g, err := Parse("test.ebnf", strings.NewReader(`
		S  = NP VP .
		VP = "sees" | "sees" NP .
		NP = "the" noun .
	`))
	require.NoError(t, err)

	require.Equal(t, "S --> NP VP\nVP --> sees\nVP --> sees NP\nNP --> the noun\n", g.String())

	noun, ok := g.Symbols().Lookup("noun")
	require.True(t, ok)
	require.False(t, g.IsNonterminal(noun), "names without a production are terminals")
}

func TestParseEBNFGroups(t *testing.T) {
	g, err := Parse("test.ebnf", strings.NewReader(`
		S = "a" ( "b" | "c" D ) .
		D = "d" .
	`))
	require.NoError(t, err)
	require.Equal(t, "S_group1 --> b\nS_group1 --> c D\nS --> a S_group1\nD --> d\n", g.String())
}

func TestParseEBNFGroupNamesAreFresh(t *testing.T) {
	g, err := Parse("test.ebnf", strings.NewReader(`
		S = "a" ( "b" ) .
		S_group1 = "z" .
	`))
	require.NoError(t, err)
	require.Equal(t, "S_group2 --> b\nS --> a S_group2\nS_group1 --> z\n", g.String())
}

func TestParseEBNFQuotedTokens(t *testing.T) {
	g, err := Parse("test.ebnf", strings.NewReader(`S = "\"" "x" "\"y" .`))
	require.NoError(t, err)
	require.Equal(t, "S --> \" x \"y\n", g.String())
}

func TestParseEBNFErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		reason string
	}{
		{"option", `S = "a" [ "b" ] .`, "optional part"},
		{"repetition", `S = "a" { "b" } .`, "repetition"},
		{"range", `S = "a" … "z" .`, "character ranges"},
		{"empty production", `S = .`, "empty production"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.ebnf", strings.NewReader(tt.src))
			var gerr *GrammarError
			require.True(t, errors.As(err, &gerr), "got %v", err)
			require.Contains(t, gerr.Reason, tt.reason)
			require.Equal(t, "S", gerr.LHS)
			require.True(t, strings.HasPrefix(gerr.Pos, "bad.ebnf:"), gerr.Pos)
		})
	}
}

func TestParseEBNFSyntaxError(t *testing.T) {
	_, err := Parse("broken.ebnf", strings.NewReader(`S = "a" `))
	require.Error(t, err)

	var gerr *GrammarError
	require.False(t, errors.As(err, &gerr))
	require.Contains(t, err.Error(), "parse grammar")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.ebnf")
	require.NoError(t, os.WriteFile(path, []byte(`S = "x" | S "x" .`), 0o644))

	g, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, g.NumRules())

	_, err = Load(filepath.Join(t.TempDir(), "missing.ebnf"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
