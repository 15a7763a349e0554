package symbols

import (
	"asmopt/internal/source"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeBlock              // обычный блок { ... }
	ScopeFunction           // параметры и результаты функции, родитель тела
	ScopeLoop               // блок pre цикла for, родитель post и body
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeBlock:
		return "block"
	case ScopeFunction:
		return "function"
	case ScopeLoop:
		return "loop"
	default:
		return "invalid"
	}
}

// Scope models a lexical scope with a parent-child hierarchy.
type Scope struct {
	Kind      ScopeKind
	Parent    ScopeID
	Span      source.Span
	NameIndex map[source.StringID]SymbolID
	Symbols   []SymbolID // в порядке объявления
	Children  []ScopeID
}
