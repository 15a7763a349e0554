package symbols

import (
	"asmopt/internal/source"
)

// SymbolKind classifies what a declaration introduces.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVariable
	SymbolFunction
	SymbolLabel
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVariable:
		return "variable"
	case SymbolFunction:
		return "function"
	case SymbolLabel:
		return "label"
	default:
		return "invalid"
	}
}

// Symbol is the identity of one declaration site.
type Symbol struct {
	Kind  SymbolKind
	Name  source.StringID
	Scope ScopeID
	Span  source.Span
}
