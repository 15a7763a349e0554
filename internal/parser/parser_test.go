package parser

import (
	"testing"

	"asmopt/internal/ast"
	"asmopt/internal/diag"
	"asmopt/internal/lexer"
	"asmopt/internal/source"
)

func TestParseVariableDeclaration(t *testing.T) {
	block := parseSnippet(t, "{ let x, y:u256 := add(1, mload(0x40)) let z }")
	if len(block.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(block.Statements))
	}
	decl, ok := block.Statements[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected VariableDeclaration, got %T", block.Statements[0])
	}
	if len(decl.Variables) != 2 || decl.Variables[1].Name != "y" || decl.Variables[1].Type != "u256" {
		t.Fatalf("unexpected variables: %+v", decl.Variables)
	}
	call, ok := decl.Value.(*ast.FunctionalInstruction)
	if !ok || call.Instruction.Name != "add" || len(call.Arguments) != 2 {
		t.Fatalf("unexpected value: %#v", decl.Value)
	}
	if _, ok := call.Arguments[1].(*ast.FunctionalInstruction); !ok {
		t.Fatalf("mload(...) must be a functional instruction, got %T", call.Arguments[1])
	}
	if empty := block.Statements[1].(*ast.VariableDeclaration); empty.Value != nil {
		t.Fatalf("let without value must have nil Value")
	}
}

func TestParseBareStatementListEqualsBlock(t *testing.T) {
	a := parseSnippet(t, "let x := 1 x := 2")
	b := parseSnippet(t, "{ let x := 1 x := 2 }")
	if err := ast.SameShape(a, b); err != nil {
		t.Fatalf("bare list and braced block differ: %v", err)
	}
}

func TestParseFunctionDefinition(t *testing.T) {
	block := parseSnippet(t, "function f(a, b:u256) -> r, s { r := a s := b }")
	fn, ok := block.Statements[0].(*ast.FunctionDefinition)
	if !ok {
		t.Fatalf("expected FunctionDefinition, got %T", block.Statements[0])
	}
	if fn.Name != "f" || len(fn.Parameters) != 2 || len(fn.Returns) != 2 || len(fn.Body.Statements) != 2 {
		t.Fatalf("unexpected function: %+v", fn)
	}

	noArgs := parseSnippet(t, "function g() { }").Statements[0].(*ast.FunctionDefinition)
	if len(noArgs.Parameters) != 0 || len(noArgs.Returns) != 0 {
		t.Fatalf("expected empty signature, got %+v", noArgs)
	}
}

func TestParseCallsAndInstructions(t *testing.T) {
	block := parseSnippet(t, "{ f(x, 1) pop dup1 g() }")
	wantKinds := []ast.Kind{ast.KindFunctionCall, ast.KindInstruction, ast.KindInstruction, ast.KindFunctionCall}
	if len(block.Statements) != len(wantKinds) {
		t.Fatalf("expected %d statements, got %d", len(wantKinds), len(block.Statements))
	}
	for i, want := range wantKinds {
		if got := ast.KindOf(block.Statements[i]); got != want {
			t.Fatalf("statement %d: got %v, want %v", i, got, want)
		}
	}
	call := block.Statements[0].(*ast.FunctionCall)
	if call.FunctionName.Name != "f" || len(call.Arguments) != 2 {
		t.Fatalf("unexpected call: %+v", call)
	}
}

func TestParseSwitch(t *testing.T) {
	block := parseSnippet(t, `switch x case 1 { y := 2 } case "a" { } default { }`)
	sw, ok := block.Statements[0].(*ast.Switch)
	if !ok {
		t.Fatalf("expected Switch, got %T", block.Statements[0])
	}
	if len(sw.Cases) != 3 {
		t.Fatalf("expected 3 cases, got %d", len(sw.Cases))
	}
	if sw.Cases[0].Value.Value != "1" || sw.Cases[1].Value.Kind != ast.LiteralString || sw.Cases[2].Value != nil {
		t.Fatalf("unexpected cases: %+v", sw.Cases)
	}
}

func TestParseForLoop(t *testing.T) {
	block := parseSnippet(t, "for { let i := 0 } lt(i, 10) { i := add(i, 1) } { pop }")
	loop, ok := block.Statements[0].(*ast.ForLoop)
	if !ok {
		t.Fatalf("expected ForLoop, got %T", block.Statements[0])
	}
	if len(loop.Pre.Statements) != 1 || len(loop.Post.Statements) != 1 || len(loop.Body.Statements) != 1 {
		t.Fatalf("unexpected loop blocks: %+v", loop)
	}
	if _, ok := loop.Condition.(*ast.FunctionalInstruction); !ok {
		t.Fatalf("expected functional condition, got %T", loop.Condition)
	}
}

func TestParseLabelAndStackAssignment(t *testing.T) {
	block := parseSnippet(t, "{ loop: 1 =: x a, b := f() }")
	if _, ok := block.Statements[0].(*ast.Label); !ok {
		t.Fatalf("expected Label, got %T", block.Statements[0])
	}
	sa, ok := block.Statements[2].(*ast.StackAssignment)
	if !ok || sa.VariableName.Name != "x" {
		t.Fatalf("expected stack assignment to x, got %#v", block.Statements[2])
	}
	as, ok := block.Statements[3].(*ast.Assignment)
	if !ok || len(as.VariableNames) != 2 {
		t.Fatalf("expected two-target assignment, got %#v", block.Statements[3])
	}
}

func TestParseTypedLiteral(t *testing.T) {
	block := parseSnippet(t, "let x:u256 := 1:u256")
	lit := block.Statements[0].(*ast.VariableDeclaration).Value.(*ast.Literal)
	if lit.Type != "u256" || lit.Value != "1" {
		t.Fatalf("unexpected literal %+v", lit)
	}
}

func TestParseSpans(t *testing.T) {
	block := parseSnippet(t, "{ let x := 1 }")
	decl := block.Statements[0].(*ast.VariableDeclaration)
	if decl.Span.Start != 2 || decl.Span.End != 12 {
		t.Fatalf("unexpected declaration span %v", decl.Span)
	}
	if block.Span.Start != 0 || block.Span.End != 14 {
		t.Fatalf("unexpected block span %v", block.Span)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"unclosed block", "{ let x := 1", diag.SynUnclosedBrace},
		{"unclosed call", "f(1, 2", diag.SynUnclosedParen},
		{"missing value", "let x :=", diag.SynExpectExpression},
		{"missing name", "let := 1", diag.SynExpectIdentifier},
		{"instruction as name", "let add := 1", diag.SynExpectIdentifier},
		{"duplicate default", "switch x default { } default { }", diag.SynDuplicateDefault},
		{"case after default", "switch x default { } case 1 { }", diag.SynCaseAfterDefault},
		{"case needs literal", "switch x case y { }", diag.SynExpectLiteral},
		{"for needs block", "for x", diag.SynExpectBlock},
		{"missing assign", "a, b f()", diag.SynExpectAssign},
		{"missing type", "let x: := 1", diag.SynExpectType},
		{"stray brace", "}", diag.SynUnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectCode(t, tt.input, tt.code)
		})
	}
}

func TestParseRecoversAfterError(t *testing.T) {
	block, bag := parseSource(t, "{ let := 1 let y := 2 }")
	if !bag.HasErrors() {
		t.Fatalf("expected an error")
	}
	found := false
	for _, s := range block.Statements {
		if d, ok := s.(*ast.VariableDeclaration); ok && d.Variables[0].Name == "y" {
			found = true
		}
	}
	if !found {
		t.Fatalf("parser should recover and keep 'let y := 2'")
	}
}

func TestParseMaxErrors(t *testing.T) {
	input := "let := 1 let := 2 let := 3"
	_, full := parseSource(t, input)
	if full.Len() != 3 {
		t.Fatalf("expected 3 errors without a limit, got %s", diagnosticsSummary(full))
	}

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("limit.asm", []byte(input))
	bag := diag.NewBag(100)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	ParseFile(lx, Options{MaxErrors: 2, Reporter: reporter})
	if bag.Len() != 2 {
		t.Fatalf("expected the limit to cap diagnostics at 2, got %d", bag.Len())
	}
}
