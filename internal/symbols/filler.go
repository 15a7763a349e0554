package symbols

import (
	"asmopt/internal/ast"
	"asmopt/internal/diag"
	"asmopt/internal/source"
)

type FillOptions struct {
	Hints    Hints
	Strings  *source.Interner // nil — создаётся новый
	Reporter diag.Reporter    // может быть nil
}

// Fill builds the scope table for root.
//
// Every block gets a scope. Functions and labels of a block are declared
// before its statements are visited; variables are declared where they appear.
// A function's parameters and returns live in a function scope between the
// enclosing block and the body. A for-loop's Pre scope is the parent of Post
// and Body. Duplicate names within one scope are reported and skipped.
func Fill(root *ast.Block, opts FillOptions) *Table {
	f := &filler{
		table:    NewTable(opts.Hints, opts.Strings),
		reporter: opts.Reporter,
	}
	if root != nil {
		f.block(root, NoScopeID, ScopeBlock)
	}
	return f.table
}

type filler struct {
	table    *Table
	reporter diag.Reporter
}

func (f *filler) declare(scope ScopeID, kind SymbolKind, name string, span source.Span) {
	prev, ok := f.table.Declare(scope, kind, name, span)
	if ok || f.reporter == nil {
		return
	}
	var notes []diag.Note
	if sym := f.table.Symbols.Get(prev); sym != nil {
		notes = append(notes, diag.Note{Span: sym.Span, Msg: "previous declaration is here"})
	}
	f.reporter.Report(diag.SemaDuplicateSymbol, diag.SevError, span,
		"\""+name+"\" is already declared in this scope", notes)
}

func (f *filler) block(b *ast.Block, parent ScopeID, kind ScopeKind) ScopeID {
	scope := f.table.Scopes.New(kind, parent, b.Span)
	f.table.BindBlock(b, scope)

	// функции и метки видны во всём блоке, поэтому регистрируем их заранее
	for _, stmt := range b.Statements {
		switch n := stmt.(type) {
		case *ast.FunctionDefinition:
			f.declare(scope, SymbolFunction, n.Name, n.Span)
		case *ast.Label:
			f.declare(scope, SymbolLabel, n.Name, n.Span)
		}
	}
	for _, stmt := range b.Statements {
		ast.Visit[struct{}](stmt, fillVisitor{f: f, scope: scope})
	}
	return scope
}

// fillVisitor declares what a statement introduces into scope.
type fillVisitor struct {
	f     *filler
	scope ScopeID
}

func (fillVisitor) VisitLiteral(*ast.Literal) struct{}         { return struct{}{} }
func (fillVisitor) VisitInstruction(*ast.Instruction) struct{} { return struct{}{} }
func (fillVisitor) VisitIdentifier(*ast.Identifier) struct{}   { return struct{}{} }
func (fillVisitor) VisitFunctionalInstruction(*ast.FunctionalInstruction) struct{} {
	return struct{}{}
}
func (fillVisitor) VisitFunctionCall(*ast.FunctionCall) struct{}       { return struct{}{} }
func (fillVisitor) VisitLabel(*ast.Label) struct{}                     { return struct{}{} }
func (fillVisitor) VisitStackAssignment(*ast.StackAssignment) struct{} { return struct{}{} }
func (fillVisitor) VisitAssignment(*ast.Assignment) struct{}           { return struct{}{} }

func (v fillVisitor) VisitVariableDeclaration(n *ast.VariableDeclaration) struct{} {
	for _, tn := range n.Variables {
		v.f.declare(v.scope, SymbolVariable, tn.Name, tn.Span)
	}
	return struct{}{}
}

func (v fillVisitor) VisitSwitch(n *ast.Switch) struct{} {
	for i := range n.Cases {
		v.f.block(n.Cases[i].Body, v.scope, ScopeBlock)
	}
	return struct{}{}
}

func (v fillVisitor) VisitFunctionDefinition(n *ast.FunctionDefinition) struct{} {
	fnScope := v.f.table.Scopes.New(ScopeFunction, v.scope, n.Span)
	v.f.table.BindFunction(n, fnScope)
	for _, tn := range n.Parameters {
		v.f.declare(fnScope, SymbolVariable, tn.Name, tn.Span)
	}
	for _, tn := range n.Returns {
		v.f.declare(fnScope, SymbolVariable, tn.Name, tn.Span)
	}
	v.f.block(n.Body, fnScope, ScopeBlock)
	return struct{}{}
}

func (v fillVisitor) VisitForLoop(n *ast.ForLoop) struct{} {
	pre := v.f.block(n.Pre, v.scope, ScopeLoop)
	v.f.block(n.Post, pre, ScopeBlock)
	v.f.block(n.Body, pre, ScopeBlock)
	return struct{}{}
}

func (v fillVisitor) VisitBlock(n *ast.Block) struct{} {
	v.f.block(n, v.scope, ScopeBlock)
	return struct{}{}
}
