package format

import (
	"strings"

	"asmopt/internal/ast"
)

type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}

// Print renders a whole tree. The output always ends with a newline and
// parses back to a tree of the same shape.
func Print(root *ast.Block, opt Options) []byte {
	w := NewWriter(opt)
	p := printer{w: w}
	if root == nil {
		root = &ast.Block{}
	}
	p.block(root)
	w.Newline()
	return w.Bytes()
}

// String renders a single node on one line; nested blocks still break lines.
func String(stmt ast.Statement) string {
	w := NewWriter(Options{})
	ast.Visit[struct{}](stmt, printer{w: w})
	return string(w.Bytes())
}

type printer struct {
	w *Writer
}

var none struct{}

func (p printer) stmt(s ast.Statement) {
	ast.Visit[struct{}](s, p)
}

// block печатает "{ }" для пустого блока и многострочный вариант иначе.
func (p printer) block(b *ast.Block) {
	if b == nil || len(b.Statements) == 0 {
		p.w.WriteString("{ }")
		return
	}
	p.w.WriteString("{")
	p.w.Newline()
	p.w.Indent()
	for _, s := range b.Statements {
		p.stmt(s)
		p.w.Newline()
	}
	p.w.Dedent()
	p.w.WriteString("}")
}

func (p printer) args(args []ast.Statement) {
	p.w.WriteString("(")
	for i, a := range args {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.stmt(a)
	}
	p.w.WriteString(")")
}

func typedNames(names []ast.TypedName) string {
	var sb strings.Builder
	for i, n := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(n.Name)
		if n.Type != "" {
			sb.WriteString(":")
			sb.WriteString(n.Type)
		}
	}
	return sb.String()
}

func (p printer) VisitLiteral(n *ast.Literal) struct{} {
	p.w.WriteString(n.Value)
	if n.Type != "" {
		p.w.WriteString(":" + n.Type)
	}
	return none
}

func (p printer) VisitInstruction(n *ast.Instruction) struct{} {
	p.w.WriteString(n.Name)
	return none
}

func (p printer) VisitIdentifier(n *ast.Identifier) struct{} {
	p.w.WriteString(n.Name)
	return none
}

func (p printer) VisitFunctionalInstruction(n *ast.FunctionalInstruction) struct{} {
	p.w.WriteString(n.Instruction.Name)
	p.args(n.Arguments)
	return none
}

func (p printer) VisitFunctionCall(n *ast.FunctionCall) struct{} {
	p.w.WriteString(n.FunctionName.Name)
	p.args(n.Arguments)
	return none
}

func (p printer) VisitLabel(n *ast.Label) struct{} {
	p.w.WriteString(n.Name + ":")
	return none
}

func (p printer) VisitStackAssignment(n *ast.StackAssignment) struct{} {
	p.w.WriteString("=: " + n.VariableName.Name)
	return none
}

func (p printer) VisitAssignment(n *ast.Assignment) struct{} {
	for i, v := range n.VariableNames {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.w.WriteString(v.Name)
	}
	p.w.WriteString(" := ")
	p.stmt(n.Value)
	return none
}

func (p printer) VisitVariableDeclaration(n *ast.VariableDeclaration) struct{} {
	p.w.WriteString("let " + typedNames(n.Variables))
	if n.Value != nil {
		p.w.WriteString(" := ")
		p.stmt(n.Value)
	}
	return none
}

func (p printer) VisitSwitch(n *ast.Switch) struct{} {
	p.w.WriteString("switch ")
	p.stmt(n.Expression)
	for i := range n.Cases {
		c := &n.Cases[i]
		p.w.Newline()
		if c.Value == nil {
			p.w.WriteString("default ")
		} else {
			p.w.WriteString("case ")
			p.stmt(c.Value)
			p.w.WriteString(" ")
		}
		p.block(c.Body)
	}
	return none
}

func (p printer) VisitFunctionDefinition(n *ast.FunctionDefinition) struct{} {
	p.w.WriteString("function " + n.Name + "(" + typedNames(n.Parameters) + ")")
	if len(n.Returns) > 0 {
		p.w.WriteString(" -> " + typedNames(n.Returns))
	}
	p.w.WriteString(" ")
	p.block(n.Body)
	return none
}

func (p printer) VisitForLoop(n *ast.ForLoop) struct{} {
	p.w.WriteString("for ")
	p.block(n.Pre)
	p.w.WriteString(" ")
	p.stmt(n.Condition)
	p.w.WriteString(" ")
	p.block(n.Post)
	p.w.WriteString(" ")
	p.block(n.Body)
	return none
}

func (p printer) VisitBlock(n *ast.Block) struct{} {
	p.block(n)
	return none
}
