package opt

import (
	"strconv"

	"asmopt/internal/ast"
	"asmopt/internal/source"
	"asmopt/internal/symbols"
)

type Options struct {
	// Separator goes between a name and its numeric suffix; "_" when empty.
	Separator string
	// Reserved names are never produced, as if already used.
	Reserved []string
}

// Stats summarises one disambiguation run.
type Stats struct {
	Symbols int // declarations that received a name
	Renamed int // declarations whose name changed
}

// Disambiguator rewrites a tree so that every declared identifier has a
// unique name. The input tree and table are only read.
type Disambiguator struct {
	root  *ast.Block
	table *symbols.Table
	sep   string

	translations map[symbols.SymbolID]string
	used         map[string]struct{}
	stats        Stats
	ran          bool
}

// NewDisambiguator binds a pass to root and the table filled from that exact tree.
func NewDisambiguator(root *ast.Block, table *symbols.Table, opts Options) *Disambiguator {
	sep := opts.Separator
	if sep == "" {
		sep = "_"
	}
	used := make(map[string]struct{}, len(opts.Reserved))
	for _, name := range opts.Reserved {
		used[name] = struct{}{}
	}
	return &Disambiguator{
		root:         root,
		table:        table,
		sep:          sep,
		translations: make(map[symbols.SymbolID]string),
		used:         used,
	}
}

// Run returns a new tree, sharing no nodes with the input, in which every
// declaration has a fresh name and every reference uses the name of the
// declaration it resolves to.
func (d *Disambiguator) Run() (out *ast.Block, err error) {
	if d.ran {
		return nil, ErrAlreadyRun
	}
	d.ran = true
	defer recoverBailout(&err)

	if d.root == nil {
		return &ast.Block{}, nil
	}
	return d.block(d.root), nil
}

// Stats reports counters of the finished run.
func (d *Disambiguator) Stats() Stats { return d.stats }

func (d *Disambiguator) scopeOf(b *ast.Block) symbols.ScopeID {
	if b == nil {
		raise(&InternalError{Pass: passDisambiguate, Detail: "nil block", Err: ErrMissingScope})
	}
	scope, ok := d.table.BlockScope(b)
	if !ok {
		raise(&InternalError{Pass: passDisambiguate, Span: b.Span, Detail: "block", Err: ErrMissingScope})
	}
	return scope
}

func (d *Disambiguator) block(b *ast.Block) *ast.Block {
	if b == nil {
		return nil
	}
	scope := d.scopeOf(b)
	return &ast.Block{Span: b.Span, Statements: d.list(scope, b.Statements)}
}

func (d *Disambiguator) list(scope symbols.ScopeID, stmts []ast.Statement) []ast.Statement {
	if stmts == nil {
		return nil
	}
	out := make([]ast.Statement, len(stmts))
	for i, s := range stmts {
		out[i] = d.stmt(scope, s)
	}
	return out
}

func (d *Disambiguator) stmt(scope symbols.ScopeID, s ast.Statement) ast.Statement {
	if s == nil {
		return nil
	}
	return ast.Visit[ast.Statement](s, translator{d: d, scope: scope})
}

// translate returns the unique name of the declaration name resolves to from scope.
func (d *Disambiguator) translate(scope symbols.ScopeID, name string, span source.Span) string {
	sym, ok := d.table.Lookup(scope, name)
	if !ok {
		raise(&InternalError{Pass: passDisambiguate, Span: span, Detail: name, Err: ErrUnresolved})
	}
	if out, ok := d.translations[sym]; ok {
		return out
	}

	candidate := name
	for n := 1; d.isUsed(candidate); n++ {
		candidate = name + d.sep + strconv.Itoa(n)
	}
	d.translations[sym] = candidate
	d.used[candidate] = struct{}{}
	d.stats.Symbols++
	if candidate != name {
		d.stats.Renamed++
	}
	return candidate
}

func (d *Disambiguator) isUsed(name string) bool {
	_, ok := d.used[name]
	return ok
}

func (d *Disambiguator) ident(scope symbols.ScopeID, id ast.Identifier) ast.Identifier {
	return ast.Identifier{Span: id.Span, Name: d.translate(scope, id.Name, id.Span)}
}

func (d *Disambiguator) typedNames(scope symbols.ScopeID, names []ast.TypedName) []ast.TypedName {
	if names == nil {
		return nil
	}
	out := make([]ast.TypedName, len(names))
	for i, tn := range names {
		out[i] = ast.TypedName{Span: tn.Span, Name: d.translate(scope, tn.Name, tn.Span), Type: tn.Type}
	}
	return out
}

// translator copies one node; scope is the scope the node appears in.
type translator struct {
	d     *Disambiguator
	scope symbols.ScopeID
}

func (t translator) VisitLiteral(n *ast.Literal) ast.Statement {
	cp := *n
	return &cp
}

func (t translator) VisitInstruction(n *ast.Instruction) ast.Statement {
	cp := *n
	return &cp
}

func (t translator) VisitIdentifier(n *ast.Identifier) ast.Statement {
	id := t.d.ident(t.scope, *n)
	return &id
}

func (t translator) VisitFunctionalInstruction(n *ast.FunctionalInstruction) ast.Statement {
	return &ast.FunctionalInstruction{
		Span:        n.Span,
		Instruction: n.Instruction,
		Arguments:   t.d.list(t.scope, n.Arguments),
	}
}

func (t translator) VisitFunctionCall(n *ast.FunctionCall) ast.Statement {
	return &ast.FunctionCall{
		Span:         n.Span,
		FunctionName: t.d.ident(t.scope, n.FunctionName),
		Arguments:    t.d.list(t.scope, n.Arguments),
	}
}

func (t translator) VisitLabel(n *ast.Label) ast.Statement {
	return &ast.Label{Span: n.Span, Name: t.d.translate(t.scope, n.Name, n.Span)}
}

func (t translator) VisitStackAssignment(n *ast.StackAssignment) ast.Statement {
	return &ast.StackAssignment{Span: n.Span, VariableName: t.d.ident(t.scope, n.VariableName)}
}

func (t translator) VisitAssignment(n *ast.Assignment) ast.Statement {
	names := make([]ast.Identifier, len(n.VariableNames))
	for i, id := range n.VariableNames {
		names[i] = t.d.ident(t.scope, id)
	}
	return &ast.Assignment{Span: n.Span, VariableNames: names, Value: t.d.stmt(t.scope, n.Value)}
}

func (t translator) VisitVariableDeclaration(n *ast.VariableDeclaration) ast.Statement {
	return &ast.VariableDeclaration{
		Span:      n.Span,
		Variables: t.d.typedNames(t.scope, n.Variables),
		Value:     t.d.stmt(t.scope, n.Value),
	}
}

func (t translator) VisitSwitch(n *ast.Switch) ast.Statement {
	out := &ast.Switch{Span: n.Span, Expression: t.d.stmt(t.scope, n.Expression)}
	if n.Cases != nil {
		out.Cases = make([]ast.Case, len(n.Cases))
	}
	for i, c := range n.Cases {
		nc := ast.Case{Span: c.Span, Body: t.d.block(c.Body)}
		if c.Value != nil {
			lit := *c.Value
			nc.Value = &lit
		}
		out.Cases[i] = nc
	}
	return out
}

// Имя функции объявлено в окружающем блоке, параметры и результаты в её
// собственной области, тело видит обе.
func (t translator) VisitFunctionDefinition(n *ast.FunctionDefinition) ast.Statement {
	fnScope, ok := t.d.table.FunctionScope(n)
	if !ok {
		raise(&InternalError{Pass: passDisambiguate, Span: n.Span, Detail: n.Name, Err: ErrMissingScope})
	}
	return &ast.FunctionDefinition{
		Span:       n.Span,
		Name:       t.d.translate(t.scope, n.Name, n.Span),
		Parameters: t.d.typedNames(fnScope, n.Parameters),
		Returns:    t.d.typedNames(fnScope, n.Returns),
		Body:       t.d.block(n.Body),
	}
}

// The condition is resolved in the scope of Pre.
func (t translator) VisitForLoop(n *ast.ForLoop) ast.Statement {
	pre := t.d.block(n.Pre)
	return &ast.ForLoop{
		Span:      n.Span,
		Pre:       pre,
		Condition: t.d.stmt(t.d.scopeOf(n.Pre), n.Condition),
		Post:      t.d.block(n.Post),
		Body:      t.d.block(n.Body),
	}
}

func (t translator) VisitBlock(n *ast.Block) ast.Statement {
	return t.d.block(n)
}
