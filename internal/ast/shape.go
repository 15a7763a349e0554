package ast

import (
	"fmt"
)

// SameShape reports the first structural difference between a and b, or nil.
// Names of identifiers and declarations are ignored; node kinds, nesting,
// list lengths, literal values and instruction names must match.
func SameShape(a, b Statement) error {
	return sameShape("root", a, b)
}

func sameShape(path string, a, b Statement) error {
	if a == nil || b == nil {
		if a == nil && b == nil {
			return nil
		}
		return fmt.Errorf("%s: one side is absent", path)
	}
	if ka, kb := KindOf(a), KindOf(b); ka != kb {
		return fmt.Errorf("%s: kind %s vs %s", path, ka, kb)
	}
	return Visit[error](a, shapeVisitor{path: path, other: b})
}

type shapeVisitor struct {
	path  string
	other Statement
}

func (s shapeVisitor) at(field string) string { return s.path + "." + field }

func (s shapeVisitor) list(field string, a, b []Statement) error {
	if len(a) != len(b) {
		return fmt.Errorf("%s: %d vs %d elements", s.at(field), len(a), len(b))
	}
	for i := range a {
		if err := sameShape(fmt.Sprintf("%s[%d]", s.at(field), i), a[i], b[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s shapeVisitor) block(field string, a, b *Block) error {
	if (a == nil) != (b == nil) {
		return fmt.Errorf("%s: one side is absent", s.at(field))
	}
	if a == nil {
		return nil
	}
	return sameShape(s.at(field), a, b)
}

func sameCount(path string, a, b int) error {
	if a != b {
		return fmt.Errorf("%s: %d vs %d names", path, a, b)
	}
	return nil
}

func (s shapeVisitor) VisitLiteral(n *Literal) error {
	o := s.other.(*Literal)
	if n.Kind != o.Kind || n.Value != o.Value || n.Type != o.Type {
		return fmt.Errorf("%s: literal %s vs %s", s.path, n.Value, o.Value)
	}
	return nil
}

func (s shapeVisitor) VisitInstruction(n *Instruction) error {
	if o := s.other.(*Instruction); n.Name != o.Name {
		return fmt.Errorf("%s: instruction %s vs %s", s.path, n.Name, o.Name)
	}
	return nil
}

func (s shapeVisitor) VisitIdentifier(*Identifier) error { return nil }

func (s shapeVisitor) VisitFunctionalInstruction(n *FunctionalInstruction) error {
	o := s.other.(*FunctionalInstruction)
	if n.Instruction.Name != o.Instruction.Name {
		return fmt.Errorf("%s: instruction %s vs %s", s.path, n.Instruction.Name, o.Instruction.Name)
	}
	return s.list("args", n.Arguments, o.Arguments)
}

func (s shapeVisitor) VisitFunctionCall(n *FunctionCall) error {
	return s.list("args", n.Arguments, s.other.(*FunctionCall).Arguments)
}

func (s shapeVisitor) VisitLabel(*Label) error { return nil }

func (s shapeVisitor) VisitStackAssignment(*StackAssignment) error { return nil }

func (s shapeVisitor) VisitAssignment(n *Assignment) error {
	o := s.other.(*Assignment)
	if err := sameCount(s.at("vars"), len(n.VariableNames), len(o.VariableNames)); err != nil {
		return err
	}
	return sameShape(s.at("value"), n.Value, o.Value)
}

func (s shapeVisitor) VisitVariableDeclaration(n *VariableDeclaration) error {
	o := s.other.(*VariableDeclaration)
	if err := sameCount(s.at("vars"), len(n.Variables), len(o.Variables)); err != nil {
		return err
	}
	return sameShape(s.at("value"), n.Value, o.Value)
}

func (s shapeVisitor) VisitSwitch(n *Switch) error {
	o := s.other.(*Switch)
	if err := sameShape(s.at("expr"), n.Expression, o.Expression); err != nil {
		return err
	}
	if len(n.Cases) != len(o.Cases) {
		return fmt.Errorf("%s: %d vs %d cases", s.at("cases"), len(n.Cases), len(o.Cases))
	}
	for i := range n.Cases {
		ca, cb := n.Cases[i], o.Cases[i]
		path := fmt.Sprintf("%s[%d]", s.at("cases"), i)
		if (ca.Value == nil) != (cb.Value == nil) {
			return fmt.Errorf("%s: default vs valued case", path)
		}
		if ca.Value != nil {
			if err := sameShape(path+".value", ca.Value, cb.Value); err != nil {
				return err
			}
		}
		if err := (shapeVisitor{path: path}).block("body", ca.Body, cb.Body); err != nil {
			return err
		}
	}
	return nil
}

func (s shapeVisitor) VisitFunctionDefinition(n *FunctionDefinition) error {
	o := s.other.(*FunctionDefinition)
	if err := sameCount(s.at("params"), len(n.Parameters), len(o.Parameters)); err != nil {
		return err
	}
	if err := sameCount(s.at("returns"), len(n.Returns), len(o.Returns)); err != nil {
		return err
	}
	return s.block("body", n.Body, o.Body)
}

func (s shapeVisitor) VisitForLoop(n *ForLoop) error {
	o := s.other.(*ForLoop)
	if err := s.block("pre", n.Pre, o.Pre); err != nil {
		return err
	}
	if err := sameShape(s.at("cond"), n.Condition, o.Condition); err != nil {
		return err
	}
	if err := s.block("post", n.Post, o.Post); err != nil {
		return err
	}
	return s.block("body", n.Body, o.Body)
}

func (s shapeVisitor) VisitBlock(n *Block) error {
	return s.list("stmts", n.Statements, s.other.(*Block).Statements)
}
