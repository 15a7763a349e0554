package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"asmopt/internal/ast"
	"asmopt/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed tree:
// 1) the root span is within file content bounds and non-empty unless the
// file has no statements at all
// 2) every node span points at the file and lies inside the root span
func CheckSpanInvariants(root *ast.Block, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	if root.Span.End < root.Span.Start {
		return fmt.Errorf("root span is inverted: %v", root.Span)
	}
	if root.Span.End == root.Span.Start && len(root.Statements) > 0 {
		return fmt.Errorf("root span is empty: %v", root.Span)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if root.Span.End > lenContent {
		return fmt.Errorf("root span end beyond content: %d > %d", root.Span.End, lenContent)
	}

	var firstErr error
	ast.Walk(root, func(s ast.Statement) bool {
		if firstErr != nil {
			return false
		}
		if s == ast.Statement(root) {
			return true
		}
		sp := s.Pos()
		switch {
		case sp.File != sf.ID:
			firstErr = fmt.Errorf("%s span file mismatch: got=%d want=%d", ast.KindOf(s), sp.File, sf.ID)
		case sp.End <= sp.Start:
			firstErr = fmt.Errorf("empty %s span: %v", ast.KindOf(s), sp)
		case sp.Start < root.Span.Start || sp.End > root.Span.End:
			firstErr = fmt.Errorf("%s span %v is outside root span %v", ast.KindOf(s), sp, root.Span)
		}
		return true
	})
	return firstErr
}

// CheckUniqueDeclarations reports the first name declared twice anywhere in
// the tree: variables, parameters, returns, functions and labels.
func CheckUniqueDeclarations(root *ast.Block) error {
	seen := make(map[string]source.Span)
	declare := func(name string, sp source.Span) error {
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%q declared at %v and %v", name, prev, sp)
		}
		seen[name] = sp
		return nil
	}
	var firstErr error
	ast.Walk(root, func(s ast.Statement) bool {
		if firstErr != nil {
			return false
		}
		var names []ast.TypedName
		if decl, ok := s.(*ast.VariableDeclaration); ok {
			names = decl.Variables
		}
		if fn, ok := s.(*ast.FunctionDefinition); ok {
			names = append(names, ast.TypedName{Name: fn.Name, Span: fn.Span})
			names = append(names, fn.Parameters...)
			names = append(names, fn.Returns...)
		}
		if l, ok := s.(*ast.Label); ok {
			names = append(names, ast.TypedName{Name: l.Name, Span: l.Span})
		}
		for _, tn := range names {
			if err := declare(tn.Name, tn.Span); err != nil {
				firstErr = err
				break
			}
		}
		return true
	})
	return firstErr
}
