package ast

// Walk visits stmt and its descendants in pre-order. When fn returns false the
// children of that node are skipped. Nil statements (absent values) are not passed to fn.
func Walk(stmt Statement, fn func(Statement) bool) {
	if stmt == nil || !fn(stmt) {
		return
	}
	Visit[struct{}](stmt, walker{fn: fn})
}

type walker struct {
	fn func(Statement) bool
}

func (w walker) all(stmts []Statement) struct{} {
	for _, s := range stmts {
		Walk(s, w.fn)
	}
	return struct{}{}
}

func (w walker) block(b *Block) {
	if b != nil {
		Walk(b, w.fn)
	}
}

func (walker) VisitLiteral(*Literal) struct{}         { return struct{}{} }
func (walker) VisitInstruction(*Instruction) struct{} { return struct{}{} }
func (walker) VisitIdentifier(*Identifier) struct{}   { return struct{}{} }
func (w walker) VisitFunctionalInstruction(n *FunctionalInstruction) struct{} {
	return w.all(n.Arguments)
}
func (w walker) VisitFunctionCall(n *FunctionCall) struct{}   { return w.all(n.Arguments) }
func (walker) VisitLabel(*Label) struct{}                     { return struct{}{} }
func (walker) VisitStackAssignment(*StackAssignment) struct{} { return struct{}{} }
func (w walker) VisitAssignment(n *Assignment) struct{} {
	Walk(n.Value, w.fn)
	return struct{}{}
}
func (w walker) VisitVariableDeclaration(n *VariableDeclaration) struct{} {
	Walk(n.Value, w.fn)
	return struct{}{}
}
func (w walker) VisitSwitch(n *Switch) struct{} {
	Walk(n.Expression, w.fn)
	for i := range n.Cases {
		if n.Cases[i].Value != nil {
			Walk(n.Cases[i].Value, w.fn)
		}
		w.block(n.Cases[i].Body)
	}
	return struct{}{}
}
func (w walker) VisitFunctionDefinition(n *FunctionDefinition) struct{} {
	w.block(n.Body)
	return struct{}{}
}
func (w walker) VisitForLoop(n *ForLoop) struct{} {
	w.block(n.Pre)
	Walk(n.Condition, w.fn)
	w.block(n.Post)
	w.block(n.Body)
	return struct{}{}
}
func (w walker) VisitBlock(n *Block) struct{} { return w.all(n.Statements) }
