package ast

import "fmt"

// Visitor handles every node variant. A new variant adds a method here, so
// every implementation fails to compile until it covers it.
type Visitor[T any] interface {
	VisitLiteral(*Literal) T
	VisitInstruction(*Instruction) T
	VisitIdentifier(*Identifier) T
	VisitFunctionalInstruction(*FunctionalInstruction) T
	VisitFunctionCall(*FunctionCall) T
	VisitLabel(*Label) T
	VisitStackAssignment(*StackAssignment) T
	VisitAssignment(*Assignment) T
	VisitVariableDeclaration(*VariableDeclaration) T
	VisitSwitch(*Switch) T
	VisitFunctionDefinition(*FunctionDefinition) T
	VisitForLoop(*ForLoop) T
	VisitBlock(*Block) T
}

// Visit dispatches stmt to the matching Visitor method.
func Visit[T any](stmt Statement, v Visitor[T]) T {
	switch n := stmt.(type) {
	case *Literal:
		return v.VisitLiteral(n)
	case *Instruction:
		return v.VisitInstruction(n)
	case *Identifier:
		return v.VisitIdentifier(n)
	case *FunctionalInstruction:
		return v.VisitFunctionalInstruction(n)
	case *FunctionCall:
		return v.VisitFunctionCall(n)
	case *Label:
		return v.VisitLabel(n)
	case *StackAssignment:
		return v.VisitStackAssignment(n)
	case *Assignment:
		return v.VisitAssignment(n)
	case *VariableDeclaration:
		return v.VisitVariableDeclaration(n)
	case *Switch:
		return v.VisitSwitch(n)
	case *FunctionDefinition:
		return v.VisitFunctionDefinition(n)
	case *ForLoop:
		return v.VisitForLoop(n)
	case *Block:
		return v.VisitBlock(n)
	default:
		// сюда попадаем только с nil
		panic(fmt.Sprintf("ast: cannot visit %T", stmt))
	}
}
