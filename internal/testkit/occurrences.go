package testkit

import (
	"fmt"

	"asmopt/internal/ast"
	"asmopt/internal/source"
	"asmopt/internal/symbols"
)

// Occurrence is one use or declaration of a name together with the
// declaration it resolves to.
type Occurrence struct {
	Name   string
	Symbol symbols.SymbolID
	Span   source.Span
}

// Occurrences resolves every name in root against table, in a fixed
// traversal order. Two trees of the same shape produce lists of equal length.
func Occurrences(root *ast.Block, table *symbols.Table) ([]Occurrence, error) {
	r := &resolver{table: table}
	r.block(root)
	return r.out, r.err
}

// CheckConsistentRenaming verifies that before and after resolve the same
// way: two occurrences share a declaration in one list exactly when they
// share it in the other.
func CheckConsistentRenaming(before, after []Occurrence) error {
	if len(before) != len(after) {
		return fmt.Errorf("occurrence count differs: %d vs %d", len(before), len(after))
	}
	forward := make(map[symbols.SymbolID]symbols.SymbolID)
	backward := make(map[symbols.SymbolID]symbols.SymbolID)
	for i := range before {
		a, b := before[i].Symbol, after[i].Symbol
		if prev, ok := forward[a]; ok && prev != b {
			return fmt.Errorf("%q at %v now resolves to a different declaration", before[i].Name, before[i].Span)
		}
		if prev, ok := backward[b]; ok && prev != a {
			return fmt.Errorf("%q at %v merges two declarations", after[i].Name, after[i].Span)
		}
		forward[a], backward[b] = b, a
	}
	return nil
}

type resolver struct {
	table *symbols.Table
	out   []Occurrence
	err   error
}

func (r *resolver) use(scope symbols.ScopeID, name string, sp source.Span) {
	if r.err != nil {
		return
	}
	sym, ok := r.table.Lookup(scope, name)
	if !ok {
		r.err = fmt.Errorf("%q at %v does not resolve", name, sp)
		return
	}
	r.out = append(r.out, Occurrence{Name: name, Symbol: sym, Span: sp})
}

func (r *resolver) block(b *ast.Block) {
	if b == nil || r.err != nil {
		return
	}
	scope, ok := r.table.BlockScope(b)
	if !ok {
		r.err = fmt.Errorf("block at %v has no scope", b.Span)
		return
	}
	for _, s := range b.Statements {
		r.stmt(scope, s)
	}
}

func (r *resolver) stmt(scope symbols.ScopeID, s ast.Statement) {
	if s == nil || r.err != nil {
		return
	}
	ast.Visit[struct{}](s, resolveVisitor{r: r, scope: scope})
}

type resolveVisitor struct {
	r     *resolver
	scope symbols.ScopeID
}

func (v resolveVisitor) all(args []ast.Statement) struct{} {
	for _, a := range args {
		v.r.stmt(v.scope, a)
	}
	return struct{}{}
}

func (resolveVisitor) VisitLiteral(*ast.Literal) struct{}         { return struct{}{} }
func (resolveVisitor) VisitInstruction(*ast.Instruction) struct{} { return struct{}{} }

func (v resolveVisitor) VisitIdentifier(n *ast.Identifier) struct{} {
	v.r.use(v.scope, n.Name, n.Span)
	return struct{}{}
}

func (v resolveVisitor) VisitFunctionalInstruction(n *ast.FunctionalInstruction) struct{} {
	return v.all(n.Arguments)
}

func (v resolveVisitor) VisitFunctionCall(n *ast.FunctionCall) struct{} {
	v.r.use(v.scope, n.FunctionName.Name, n.FunctionName.Span)
	return v.all(n.Arguments)
}

func (v resolveVisitor) VisitLabel(n *ast.Label) struct{} {
	v.r.use(v.scope, n.Name, n.Span)
	return struct{}{}
}

func (v resolveVisitor) VisitStackAssignment(n *ast.StackAssignment) struct{} {
	v.r.use(v.scope, n.VariableName.Name, n.VariableName.Span)
	return struct{}{}
}

func (v resolveVisitor) VisitAssignment(n *ast.Assignment) struct{} {
	for _, id := range n.VariableNames {
		v.r.use(v.scope, id.Name, id.Span)
	}
	v.r.stmt(v.scope, n.Value)
	return struct{}{}
}

func (v resolveVisitor) VisitVariableDeclaration(n *ast.VariableDeclaration) struct{} {
	for _, tn := range n.Variables {
		v.r.use(v.scope, tn.Name, tn.Span)
	}
	v.r.stmt(v.scope, n.Value)
	return struct{}{}
}

func (v resolveVisitor) VisitSwitch(n *ast.Switch) struct{} {
	v.r.stmt(v.scope, n.Expression)
	for i := range n.Cases {
		v.r.block(n.Cases[i].Body)
	}
	return struct{}{}
}

func (v resolveVisitor) VisitFunctionDefinition(n *ast.FunctionDefinition) struct{} {
	v.r.use(v.scope, n.Name, n.Span)
	fnScope, ok := v.r.table.FunctionScope(n)
	if !ok {
		if v.r.err == nil {
			v.r.err = fmt.Errorf("function %q has no scope", n.Name)
		}
		return struct{}{}
	}
	for _, tn := range n.Parameters {
		v.r.use(fnScope, tn.Name, tn.Span)
	}
	for _, tn := range n.Returns {
		v.r.use(fnScope, tn.Name, tn.Span)
	}
	v.r.block(n.Body)
	return struct{}{}
}

func (v resolveVisitor) VisitForLoop(n *ast.ForLoop) struct{} {
	v.r.block(n.Pre)
	if pre, ok := v.r.table.BlockScope(n.Pre); ok {
		v.r.stmt(pre, n.Condition)
	}
	v.r.block(n.Post)
	v.r.block(n.Body)
	return struct{}{}
}

func (v resolveVisitor) VisitBlock(n *ast.Block) struct{} {
	v.r.block(n)
	return struct{}{}
}
