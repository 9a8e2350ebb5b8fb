// Package sample provides a small English grammar with attachment
// ambiguities and a generator of ever longer sentences for it.
package sample

import (
	"github.com/dhamidi/chartparse/grammar"
)

// Rules lists the sample grammar as lhs followed by the right-hand side.
var Rules = [][]string{
	{"S", "NP", "VP"},
	{"VP", "Verb"},
	{"VP", "Verb", "NP"},
	{"VP", "VP", "PP"},
	{"NP", "Det", "Noun"},
	{"NP", "NP", "PP"},
	{"PP", "Prep", "NP"},
	{"Verb", "sees"},
	{"Det", "the"},
	{"Det", "a"},
	{"Prep", "under"},
	{"Prep", "with"},
	{"Prep", "in"},
	{"Noun", "zebra"},
	{"Noun", "lion"},
	{"Noun", "tree"},
	{"Noun", "park"},
	{"Noun", "telescope"},
}

// EBNF is the same grammar in the notation accepted by grammar.Parse.
const EBNF = `
S    = NP VP .
VP   = Verb | Verb NP | VP PP .
NP   = Det Noun | NP PP .
PP   = Prep NP .
Verb = "sees" .
Det  = "the" | "a" .
Prep = "under" | "with" | "in" .
Noun = "zebra" | "lion" | "tree" | "park" | "telescope" .
`

// Start is the start category of the sample grammar.
const Start = "S"

// Grammar builds the sample grammar.
func Grammar() *grammar.Grammar {
	b := grammar.NewBuilder()
	for _, r := range Rules {
		b.Add(r[0], r[1:]...)
	}
	g, err := b.Build()
	if err != nil {
		panic("sample grammar: " + err.Error())
	}
	return g
}

var (
	prefix = []string{"the", "lion", "sees", "a", "zebra"}
	suffix = []string{
		"under", "a", "tree",
		"with", "a", "telescope",
		"in", "the", "park",
	}
)

// Sentence returns "the lion sees a zebra" followed by n prepositional
// phrases, cycling through "under a tree", "with a telescope" and "in the
// park". Every sentence is in the language of Grammar, and the number of
// analyses grows quickly with n.
func Sentence(n int) []string {
	words := make([]string, 0, len(prefix)+3*n)
	words = append(words, prefix...)
	for i := 0; i < n; i++ {
		j := 3 * (i % 3)
		words = append(words, suffix[j:j+3]...)
	}
	return words
}
