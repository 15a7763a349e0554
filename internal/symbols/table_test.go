package symbols

import (
	"testing"

	"asmopt/internal/source"
)

func TestDeclareAndLookup(t *testing.T) {
	table := NewTable(Hints{}, nil)
	root := table.Scopes.New(ScopeBlock, NoScopeID, source.Span{})
	inner := table.Scopes.New(ScopeBlock, root, source.Span{})

	x, ok := table.Declare(root, SymbolVariable, "x", source.Span{})
	if !ok || !x.IsValid() {
		t.Fatalf("declare failed")
	}
	if dup, ok := table.Declare(root, SymbolVariable, "x", source.Span{}); ok || dup != x {
		t.Fatalf("duplicate declaration must return the existing symbol")
	}
	if got, ok := table.Lookup(inner, "x"); !ok || got != x {
		t.Fatalf("inner scope should see outer x")
	}
	if _, ok := table.Lookup(inner, "missing"); ok {
		t.Fatalf("unknown name must not resolve")
	}
	if table.SymbolName(x) != "x" {
		t.Fatalf("unexpected symbol name %q", table.SymbolName(x))
	}
	if err := table.Validate(); err != nil {
		t.Fatalf("table should be valid: %v", err)
	}
}

func TestLookupShadowing(t *testing.T) {
	table := NewTable(Hints{}, nil)
	root := table.Scopes.New(ScopeBlock, NoScopeID, source.Span{})
	inner := table.Scopes.New(ScopeBlock, root, source.Span{})
	outer, _ := table.Declare(root, SymbolVariable, "x", source.Span{})
	shadow, _ := table.Declare(inner, SymbolVariable, "x", source.Span{})

	if got, _ := table.Lookup(inner, "x"); got != shadow {
		t.Fatalf("inner lookup should find the shadowing declaration")
	}
	if got, _ := table.Lookup(root, "x"); got != outer {
		t.Fatalf("outer lookup should find the outer declaration")
	}
}

func TestLookupFunctionBoundary(t *testing.T) {
	table := NewTable(Hints{}, nil)
	root := table.Scopes.New(ScopeBlock, NoScopeID, source.Span{})
	fn := table.Scopes.New(ScopeFunction, root, source.Span{})
	body := table.Scopes.New(ScopeBlock, fn, source.Span{})

	table.Declare(root, SymbolVariable, "v", source.Span{})
	g, _ := table.Declare(root, SymbolFunction, "g", source.Span{})
	l, _ := table.Declare(root, SymbolLabel, "l", source.Span{})
	param, _ := table.Declare(fn, SymbolVariable, "a", source.Span{})

	if got, ok := table.Lookup(body, "a"); !ok || got != param {
		t.Fatalf("parameters must be visible in the body")
	}
	if _, ok := table.Lookup(body, "v"); ok {
		t.Fatalf("outer variables must be invisible inside a function")
	}
	if got, ok := table.Lookup(body, "g"); !ok || got != g {
		t.Fatalf("outer functions stay visible")
	}
	if got, ok := table.Lookup(body, "l"); !ok || got != l {
		t.Fatalf("outer labels stay visible")
	}
}

func TestValidateDetectsBrokenLinks(t *testing.T) {
	table := NewTable(Hints{}, nil)
	root := table.Scopes.New(ScopeBlock, NoScopeID, source.Span{})
	child := table.Scopes.New(ScopeBlock, root, source.Span{})
	table.Declare(child, SymbolVariable, "x", source.Span{})

	table.Scopes.Get(root).Children = nil
	if err := table.Validate(); err == nil {
		t.Fatalf("expected missing backlink error")
	}

	table = NewTable(Hints{}, nil)
	root = table.Scopes.New(ScopeBlock, NoScopeID, source.Span{})
	table.Declare(root, SymbolVariable, "x", source.Span{})
	table.Scopes.Get(root).Symbols = nil
	if err := table.Validate(); err == nil {
		t.Fatalf("expected name index mismatch error")
	}
}
