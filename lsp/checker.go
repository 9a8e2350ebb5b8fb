package lsp

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/chartparse/earley"
	"github.com/dhamidi/chartparse/grammar"
)

const diagnosticSource = "chartparse"

// Checker turns sentence documents into diagnostics.
type Checker struct {
	grammar *grammar.Grammar
	engine  earley.Engine
	start   string
}

// NewChecker returns a checker that expects every line to derive start.
func NewChecker(g *grammar.Grammar, engine earley.Engine, start string) *Checker {
	return &Checker{grammar: g, engine: engine, start: start}
}

// word is a token and its UTF-16 column range on its line.
type word struct {
	text       string
	start, end protocol.UInteger
}

func splitWords(line string) []word {
	var words []word
	var col, begin protocol.UInteger
	var sb strings.Builder
	flush := func() {
		if sb.Len() > 0 {
			words = append(words, word{text: sb.String(), start: begin, end: col})
			sb.Reset()
		}
	}
	for _, r := range line {
		if unicode.IsSpace(r) {
			flush()
		} else {
			if sb.Len() == 0 {
				begin = col
			}
			sb.WriteRune(r)
		}
		col += protocol.UInteger(utf16.RuneLen(r))
	}
	flush()
	return words
}

// Diagnose reports every line whose words the start category does not
// derive, and every word the grammar does not know.
func (c *Checker) Diagnose(text string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for n, line := range strings.Split(text, "\n") {
		words := splitWords(line)
		if len(words) == 0 {
			continue
		}
		tokens := make([]string, len(words))
		for i, w := range words {
			tokens[i] = w.text
		}
		lineNo := protocol.UInteger(n)

		for _, w := range words {
			if _, ok := c.grammar.Symbols().Lookup(w.text); !ok {
				diagnostics = append(diagnostics, diagnostic(lineNo, w.start, w.end,
					protocol.DiagnosticSeverityWarning, fmt.Sprintf("unknown word %q", w.text)))
			}
		}

		chart := c.engine.Recognize(tokens)
		if chart.Success(c.start, 0) {
			continue
		}
		msg := fmt.Sprintf("not a %s", c.start)
		if k := longestPrefix(chart, c.start); k > 0 {
			msg += fmt.Sprintf(" (the first %d of %d words are)", k, len(words))
		}
		diagnostics = append(diagnostics, diagnostic(lineNo, words[0].start, words[len(words)-1].end,
			protocol.DiagnosticSeverityError, msg))
	}
	return diagnostics
}

// longestPrefix returns the largest k such that tokens[:k] derives category.
func longestPrefix(chart *earley.Chart, category string) int {
	for k := chart.Len() - 1; k > 0; k-- {
		if len(chart.Find(k, category, 0)) > 0 {
			return k
		}
	}
	return 0
}

func diagnostic(line, start, end protocol.UInteger, severity protocol.DiagnosticSeverity, msg string) protocol.Diagnostic {
	source := diagnosticSource
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: start},
			End:   protocol.Position{Line: line, Character: end},
		},
		Severity: &severity,
		Source:   &source,
		Message:  msg,
	}
}
