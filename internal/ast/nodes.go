package ast

import (
	"asmopt/internal/source"
)

// Statement is any IR node. The marker method keeps the set closed to this package.
type Statement interface {
	Pos() source.Span
	isStatement()
}

type LiteralKind uint8

const (
	LiteralNumber LiteralKind = iota
	LiteralBool
	LiteralString
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralNumber:
		return "number"
	case LiteralBool:
		return "bool"
	case LiteralString:
		return "string"
	default:
		return "unknown"
	}
}

// TypedName is a declared name with an optional type annotation ("x:u256").
type TypedName struct {
	Span source.Span
	Name string
	Type string // пусто, если тип не указан
}

// Literal keeps Value exactly as written; string literals keep their quotes.
type Literal struct {
	Span  source.Span
	Kind  LiteralKind
	Value string
	Type  string
}

// Instruction is a bare built-in instruction in stack style ("add").
type Instruction struct {
	Span source.Span
	Name string
}

type Identifier struct {
	Span source.Span
	Name string
}

// FunctionalInstruction is a built-in applied to arguments ("add(x, 1)").
type FunctionalInstruction struct {
	Span        source.Span
	Instruction Instruction
	Arguments   []Statement
}

type FunctionCall struct {
	Span         source.Span
	FunctionName Identifier
	Arguments    []Statement
}

type Label struct {
	Span source.Span
	Name string
}

// StackAssignment pops the stack top into a variable ("=: x").
type StackAssignment struct {
	Span         source.Span
	VariableName Identifier
}

type Assignment struct {
	Span          source.Span
	VariableNames []Identifier
	Value         Statement
}

// VariableDeclaration introduces names with an optional initial value.
type VariableDeclaration struct {
	Span      source.Span
	Variables []TypedName
	Value     Statement // nil для "let x"
}

// Case is one arm of a switch. Value is nil for the default arm.
type Case struct {
	Span  source.Span
	Value *Literal
	Body  *Block
}

type Switch struct {
	Span       source.Span
	Expression Statement
	Cases      []Case
}

type FunctionDefinition struct {
	Span       source.Span
	Name       string
	Parameters []TypedName
	Returns    []TypedName
	Body       *Block
}

// ForLoop runs Pre once; Condition, Post and Body see Pre's declarations.
type ForLoop struct {
	Span      source.Span
	Pre       *Block
	Condition Statement
	Post      *Block
	Body      *Block
}

type Block struct {
	Span       source.Span
	Statements []Statement
}

func (n *Literal) Pos() source.Span               { return n.Span }
func (n *Instruction) Pos() source.Span           { return n.Span }
func (n *Identifier) Pos() source.Span            { return n.Span }
func (n *FunctionalInstruction) Pos() source.Span { return n.Span }
func (n *FunctionCall) Pos() source.Span          { return n.Span }
func (n *Label) Pos() source.Span                 { return n.Span }
func (n *StackAssignment) Pos() source.Span       { return n.Span }
func (n *Assignment) Pos() source.Span            { return n.Span }
func (n *VariableDeclaration) Pos() source.Span   { return n.Span }
func (n *Switch) Pos() source.Span                { return n.Span }
func (n *FunctionDefinition) Pos() source.Span    { return n.Span }
func (n *ForLoop) Pos() source.Span               { return n.Span }
func (n *Block) Pos() source.Span                 { return n.Span }

func (*Literal) isStatement()               {}
func (*Instruction) isStatement()           {}
func (*Identifier) isStatement()            {}
func (*FunctionalInstruction) isStatement() {}
func (*FunctionCall) isStatement()          {}
func (*Label) isStatement()                 {}
func (*StackAssignment) isStatement()       {}
func (*Assignment) isStatement()            {}
func (*VariableDeclaration) isStatement()   {}
func (*Switch) isStatement()                {}
func (*FunctionDefinition) isStatement()    {}
func (*ForLoop) isStatement()               {}
func (*Block) isStatement()                 {}
