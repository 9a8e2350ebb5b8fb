package grammar

import "fmt"

// Symbol is an interned grammar symbol. Non-negative values index a
// SymbolTable; negative values are reserved for input tokens the grammar
// does not know about.
type Symbol int32

// SymbolTable maps symbol text to identifiers. It is filled by a Builder and
// read-only once the grammar is built.
type SymbolTable struct {
	names []string
	ids   map[string]Symbol
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{ids: make(map[string]Symbol)}
}

// intern finds or creates the symbol for name.
func (t *SymbolTable) intern(name string) Symbol {
	if s, ok := t.ids[name]; ok {
		return s
	}
	s := Symbol(len(t.names))
	t.names = append(t.names, name)
	t.ids[name] = s
	return s
}

// Lookup returns the symbol for name, if the grammar mentions it.
func (t *SymbolTable) Lookup(name string) (Symbol, bool) {
	s, ok := t.ids[name]
	return s, ok
}

// Name returns the text of s. Symbols outside the table render as "#n".
func (t *SymbolTable) Name(s Symbol) string {
	if s < 0 || int(s) >= len(t.names) {
		return fmt.Sprintf("#%d", s)
	}
	return t.names[s]
}

// Len returns the number of interned symbols.
func (t *SymbolTable) Len() int {
	return len(t.names)
}
