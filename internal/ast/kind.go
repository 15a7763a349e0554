package ast

// Kind names a node variant for diagnostics and trace output.
type Kind uint8

const (
	KindLiteral Kind = iota
	KindInstruction
	KindIdentifier
	KindFunctionalInstruction
	KindFunctionCall
	KindLabel
	KindStackAssignment
	KindAssignment
	KindVariableDeclaration
	KindSwitch
	KindFunctionDefinition
	KindForLoop
	KindBlock
)

var kindNames = [...]string{
	KindLiteral:               "Literal",
	KindInstruction:           "Instruction",
	KindIdentifier:            "Identifier",
	KindFunctionalInstruction: "FunctionalInstruction",
	KindFunctionCall:          "FunctionCall",
	KindLabel:                 "Label",
	KindStackAssignment:       "StackAssignment",
	KindAssignment:            "Assignment",
	KindVariableDeclaration:   "VariableDeclaration",
	KindSwitch:                "Switch",
	KindFunctionDefinition:    "FunctionDefinition",
	KindForLoop:               "ForLoop",
	KindBlock:                 "Block",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// KindOf reports the variant of stmt.
func KindOf(stmt Statement) Kind {
	return Visit[Kind](stmt, kindVisitor{})
}

type kindVisitor struct{}

func (kindVisitor) VisitLiteral(*Literal) Kind         { return KindLiteral }
func (kindVisitor) VisitInstruction(*Instruction) Kind { return KindInstruction }
func (kindVisitor) VisitIdentifier(*Identifier) Kind   { return KindIdentifier }
func (kindVisitor) VisitFunctionalInstruction(*FunctionalInstruction) Kind {
	return KindFunctionalInstruction
}
func (kindVisitor) VisitFunctionCall(*FunctionCall) Kind       { return KindFunctionCall }
func (kindVisitor) VisitLabel(*Label) Kind                     { return KindLabel }
func (kindVisitor) VisitStackAssignment(*StackAssignment) Kind { return KindStackAssignment }
func (kindVisitor) VisitAssignment(*Assignment) Kind           { return KindAssignment }
func (kindVisitor) VisitVariableDeclaration(*VariableDeclaration) Kind {
	return KindVariableDeclaration
}
func (kindVisitor) VisitSwitch(*Switch) Kind { return KindSwitch }
func (kindVisitor) VisitFunctionDefinition(*FunctionDefinition) Kind {
	return KindFunctionDefinition
}
func (kindVisitor) VisitForLoop(*ForLoop) Kind { return KindForLoop }
func (kindVisitor) VisitBlock(*Block) Kind     { return KindBlock }
