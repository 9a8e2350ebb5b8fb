package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/chartparse/grammar"
	"github.com/dhamidi/chartparse/sample"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestRecognize(t *testing.T) {
	out, err := run(t, "", "recognize", "the", "lion", "sees", "a", "zebra")
	require.NoError(t, err)
	require.Equal(t, "true\n", out)

	out, err = run(t, "the lion\nsees a\n", "recognize", "--engine", "baseline")
	require.NoError(t, err)
	require.Equal(t, "false\n", out)
}

func TestRecognizeDump(t *testing.T) {
	out, err := run(t, "", "recognize", "--dump", "--bucket", "-1", "--cutoff", "1", "the", "lion", "sees")
	require.NoError(t, err)
	require.Equal(t, "true\n"+
		"Chart size: 9 edges\n"+
		"4 edges ending in position 3:\n"+
		"    [0-3: S --> NP VP .]\n"+
		"    ... (3 more)\n", out)
}

func TestRecognizeGrammarFile(t *testing.T) {
	path := writeFile(t, "zoo.ebnf", sample.EBNF)
	out, err := run(t, "", "recognize", "--grammar", path, "--start", "NP", "--order", "fifo", "a", "lion", "in", "the", "park")
	require.NoError(t, err)
	require.Equal(t, "true\n", out)
}

func TestRecognizeFromConfig(t *testing.T) {
	grammarPath := writeFile(t, "zoo.ebnf", sample.EBNF)
	configPath := writeFile(t, "chartparse.toml", `
grammar = "`+filepath.ToSlash(grammarPath)+`"
start = "PP"
engine = "baseline"
`)
	out, err := run(t, "", "--config", configPath, "recognize", "under", "a", "tree")
	require.NoError(t, err)
	require.Equal(t, "true\n", out)

	// An explicit flag wins over the file.
	out, err = run(t, "", "--config", configPath, "recognize", "--start", "S", "under", "a", "tree")
	require.NoError(t, err)
	require.Equal(t, "false\n", out)
}

func TestRecognizeErrors(t *testing.T) {
	_, err := run(t, "", "recognize", "--engine", "cyk", "the")
	require.ErrorContains(t, err, "expected one of baseline, leftcorner")

	_, err = run(t, "", "recognize", "--order", "random", "the")
	require.Error(t, err)

	_, err = run(t, "", "recognize", "--grammar", filepath.Join(t.TempDir(), "none.ebnf"), "the")
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "", "--config", writeFile(t, "bad.toml", `jobs = 0`), "recognize", "the")
	require.ErrorContains(t, err, "jobs:")
}

func TestBatch(t *testing.T) {
	path := writeFile(t, "sentences.txt", "the lion sees a zebra\n\nthe lion sees a\n  a zebra sees the lion in the park  \n")
	out, err := run(t, "", "batch", "--jobs", "2", path)
	require.NoError(t, err)
	require.Equal(t, "1: ok\n3: no\n4: ok\n", out)

	_, err = run(t, "", "batch", "--jobs", "0", path)
	require.ErrorContains(t, err, "jobs:")
}

func TestDemo(t *testing.T) {
	out, err := run(t, "", "demo", "--n", "1", "--engine", "baseline", "--dump", "--bucket", "0")
	require.NoError(t, err)
	require.Contains(t, out, "Sentence: the lion sees a zebra under a tree\n")
	require.Contains(t, out, "Engine: baseline (lifo)\n")
	require.Contains(t, out, "Success: true\n")
	require.Contains(t, out, "Chart size: ")
	require.NotContains(t, out, "edges ending in position")
}

func TestBench(t *testing.T) {
	out, err := run(t, "", "bench", "--max", "1", "--repeat", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, []string{"N", "WORDS", "EDGES", "baseline", "leftcorner", "SPEEDUP", "SAME"}, strings.Fields(lines[0]))
	for _, line := range lines[2:] {
		fields := strings.Fields(line)
		require.Equal(t, "true", fields[len(fields)-1], line)
	}
}

func TestCheck(t *testing.T) {
	path := writeFile(t, "zoo.ebnf", sample.EBNF)
	out, err := run(t, "", "check", "--start", "S", path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "S --> NP VP\nVP --> Verb\n"), out)
	require.True(t, strings.HasSuffix(out, "18 rules, 8 nonterminals, 19 symbols, 16 left corners\n"), out)

	_, err = run(t, "", "check", "--start", "the", path)
	require.ErrorContains(t, err, "start category the has no rules")
}

func TestCheckRejectsGrammar(t *testing.T) {
	path := writeFile(t, "bad.ebnf", "S = [ NP ] VP .\n")
	_, err := run(t, "", "check", path)
	var gerr *grammar.GrammarError
	require.True(t, errors.As(err, &gerr), "%v", err)
	require.Equal(t, "S", gerr.LHS)
}
