package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"asmopt/internal/ast"
	"asmopt/internal/source"
)

// Hints provide optional capacity suggestions for the symbol table arenas.
type Hints struct{ Scopes, Symbols uint }

// Table maps IR nodes to scopes and scopes to the names declared in them.
// Nodes are keyed by pointer identity, so a table only describes the exact tree it was filled from.
type Table struct {
	Scopes    *Scopes
	Symbols   *Symbols
	Strings   *source.Interner
	blocks    map[*ast.Block]ScopeID
	functions map[*ast.FunctionDefinition]ScopeID
}

// NewTable builds a fresh table with optional capacity hints.
// If strings is nil, a fresh interner is allocated.
func NewTable(h Hints, strings *source.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbol capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Table{
		Scopes:    NewScopes(scopeCap),
		Symbols:   NewSymbols(symCap),
		Strings:   strings,
		blocks:    make(map[*ast.Block]ScopeID),
		functions: make(map[*ast.FunctionDefinition]ScopeID),
	}
}

// BlockScope returns the scope opened by b.
func (t *Table) BlockScope(b *ast.Block) (ScopeID, bool) {
	id, ok := t.blocks[b]
	return id, ok
}

// FunctionScope returns the scope holding fn's parameters and returns.
func (t *Table) FunctionScope(fn *ast.FunctionDefinition) (ScopeID, bool) {
	id, ok := t.functions[fn]
	return id, ok
}

// BindBlock records that b opens scope.
func (t *Table) BindBlock(b *ast.Block, scope ScopeID) { t.blocks[b] = scope }

// BindFunction records the parameter scope of fn.
func (t *Table) BindFunction(fn *ast.FunctionDefinition, scope ScopeID) { t.functions[fn] = scope }

// Declare adds name to scope. When the name is already declared directly in
// scope nothing is added and the existing symbol is returned with ok=false.
func (t *Table) Declare(scope ScopeID, kind SymbolKind, name string, span source.Span) (SymbolID, bool) {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		panic(fmt.Errorf("declare %q in unknown scope %d", name, scope))
	}
	nameID := t.Strings.Intern(name)
	if prev, exists := sc.NameIndex[nameID]; exists {
		return prev, false
	}
	id := t.Symbols.New(Symbol{Kind: kind, Name: nameID, Scope: scope, Span: span})
	sc.NameIndex[nameID] = id
	sc.Symbols = append(sc.Symbols, id)
	return id, true
}

// SymbolName returns the declared text of a symbol.
func (t *Table) SymbolName(id SymbolID) string {
	sym := t.Symbols.Get(id)
	if sym == nil {
		return ""
	}
	return t.Strings.MustLookup(sym.Name)
}
