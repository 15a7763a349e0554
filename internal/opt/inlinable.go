package opt

import (
	"asmopt/internal/ast"
)

// InlinableFunctionFilter collects functions of the form
//
//	function f(...) -> r { r := expr }
//
// where expr is built from literals, instructions, identifiers, functional
// instructions and calls, and mentions neither f nor r. Names must already
// be unique across the tree (run Disambiguator first); otherwise the result
// is unspecified.
type InlinableFunctionFilter struct {
	found map[string]*ast.FunctionDefinition
	ran   bool
}

func NewInlinableFunctionFilter() *InlinableFunctionFilter {
	return &InlinableFunctionFilter{found: make(map[string]*ast.FunctionDefinition)}
}

// Run scans the whole tree, nested functions included, and returns the
// inlinable definitions keyed by name. The definitions point into root.
func (f *InlinableFunctionFilter) Run(root *ast.Block) (result map[string]*ast.FunctionDefinition, err error) {
	if f.ran {
		return nil, ErrAlreadyRun
	}
	f.ran = true
	defer recoverBailout(&err)

	if root != nil {
		ast.Visit[struct{}](root, scanner{f: f})
	}
	return f.found, nil
}

// classify records fn when it is inlinable.
func (f *InlinableFunctionFilter) classify(fn *ast.FunctionDefinition) {
	if len(fn.Returns) != 1 || fn.Body == nil || len(fn.Body.Statements) != 1 {
		return
	}
	ret := fn.Returns[0].Name
	assign, ok := fn.Body.Statements[0].(*ast.Assignment)
	if !ok || len(assign.VariableNames) != 1 || assign.VariableNames[0].Name != ret {
		return
	}
	ok, err := pure(assign.Value, disallowed{function: fn.Name, output: ret})
	if err != nil {
		raise(err)
	}
	if ok {
		f.found[fn.Name] = fn
	}
}

// disallowed is the pair of names a candidate body may not mention.
type disallowed struct {
	function string
	output   string
}

func (d disallowed) has(name string) bool {
	return name == d.function || name == d.output
}

// pure reports whether expr may replace a call of the function being checked.
// Labels and stack assignments are malformed input, not a negative answer.
func pure(expr ast.Statement, names disallowed) (bool, error) {
	if expr == nil {
		return false, nil
	}
	v := ast.Visit[verdict](expr, purity{names: names})
	if v.err != nil {
		return false, v.err
	}
	return v.ok, nil
}

type verdict struct {
	ok  bool
	err *InternalError
}

var (
	pass   = verdict{ok: true}
	reject = verdict{}
)

func unexpected(kind string, n ast.Statement) verdict {
	return verdict{err: &InternalError{Pass: passInlinable, Span: n.Pos(), Detail: kind, Err: ErrUnexpectedNode}}
}

type purity struct {
	names disallowed
}

func (p purity) all(args []ast.Statement) verdict {
	for _, a := range args {
		if v := ast.Visit[verdict](a, p); !v.ok || v.err != nil {
			return v
		}
	}
	return pass
}

func (purity) VisitLiteral(*ast.Literal) verdict         { return pass }
func (purity) VisitInstruction(*ast.Instruction) verdict { return pass }

func (p purity) VisitIdentifier(n *ast.Identifier) verdict {
	if p.names.has(n.Name) {
		return reject
	}
	return pass
}

func (p purity) VisitFunctionalInstruction(n *ast.FunctionalInstruction) verdict {
	return p.all(n.Arguments)
}

func (p purity) VisitFunctionCall(n *ast.FunctionCall) verdict {
	if p.names.has(n.FunctionName.Name) {
		return reject
	}
	return p.all(n.Arguments)
}

func (purity) VisitLabel(n *ast.Label) verdict { return unexpected("label", n) }
func (purity) VisitStackAssignment(n *ast.StackAssignment) verdict {
	return unexpected("stack assignment", n)
}
func (purity) VisitAssignment(*ast.Assignment) verdict                   { return reject }
func (purity) VisitVariableDeclaration(*ast.VariableDeclaration) verdict { return reject }
func (purity) VisitSwitch(*ast.Switch) verdict                           { return reject }
func (purity) VisitFunctionDefinition(*ast.FunctionDefinition) verdict   { return reject }
func (purity) VisitForLoop(*ast.ForLoop) verdict                         { return reject }
func (purity) VisitBlock(*ast.Block) verdict                             { return reject }

// scanner visits every statement of the tree so nested definitions are
// classified wherever they appear.
type scanner struct {
	f *InlinableFunctionFilter
}

var done struct{}

func (s scanner) visit(stmt ast.Statement) {
	if stmt != nil {
		ast.Visit[struct{}](stmt, s)
	}
}

func (s scanner) each(stmts []ast.Statement) struct{} {
	for _, stmt := range stmts {
		s.visit(stmt)
	}
	return done
}

func (s scanner) block(b *ast.Block) {
	if b != nil {
		s.each(b.Statements)
	}
}

func (scanner) VisitLiteral(*ast.Literal) struct{}         { return done }
func (scanner) VisitInstruction(*ast.Instruction) struct{} { return done }
func (scanner) VisitIdentifier(*ast.Identifier) struct{}   { return done }

func (s scanner) VisitFunctionalInstruction(n *ast.FunctionalInstruction) struct{} {
	return s.each(n.Arguments)
}

func (s scanner) VisitFunctionCall(n *ast.FunctionCall) struct{} {
	return s.each(n.Arguments)
}

func (scanner) VisitLabel(n *ast.Label) struct{} {
	raise(unexpected("label", n).err)
	return done
}

func (scanner) VisitStackAssignment(n *ast.StackAssignment) struct{} {
	raise(unexpected("stack assignment", n).err)
	return done
}

func (s scanner) VisitAssignment(n *ast.Assignment) struct{} {
	s.visit(n.Value)
	return done
}

func (s scanner) VisitVariableDeclaration(n *ast.VariableDeclaration) struct{} {
	s.visit(n.Value)
	return done
}

func (s scanner) VisitSwitch(n *ast.Switch) struct{} {
	s.visit(n.Expression)
	for i := range n.Cases {
		s.block(n.Cases[i].Body)
	}
	return done
}

func (s scanner) VisitFunctionDefinition(n *ast.FunctionDefinition) struct{} {
	s.f.classify(n)
	s.block(n.Body)
	return done
}

func (s scanner) VisitForLoop(n *ast.ForLoop) struct{} {
	s.block(n.Pre)
	s.visit(n.Condition)
	s.block(n.Post)
	s.block(n.Body)
	return done
}

func (s scanner) VisitBlock(n *ast.Block) struct{} {
	return s.each(n.Statements)
}
