package grammar

import "fmt"

// GrammarError reports a grammar the recognizers cannot accept, such as a
// rule with an empty right-hand side.
type GrammarError struct {
	Pos    string // source position, empty for programmatic grammars
	Rule   int    // index of the offending rule as added, -1 if not rule specific
	LHS    string
	Reason string
}

func (e *GrammarError) Error() string {
	var where string
	switch {
	case e.Pos != "" && e.LHS != "":
		where = fmt.Sprintf("%s: production %s: ", e.Pos, e.LHS)
	case e.Pos != "":
		where = e.Pos + ": "
	case e.Rule >= 0:
		where = fmt.Sprintf("rule %d (%s): ", e.Rule, e.LHS)
	case e.LHS != "":
		where = fmt.Sprintf("%s: ", e.LHS)
	}
	return "grammar: " + where + e.Reason
}
