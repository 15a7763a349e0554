package opt

import (
	"errors"
	"strings"
	"testing"

	"asmopt/internal/ast"
	"asmopt/internal/format"
	"asmopt/internal/source"
	"asmopt/internal/symbols"
	"asmopt/internal/testkit"
)

func disambiguate(t *testing.T, input string, opts Options) (*ast.Block, *ast.Block) {
	t.Helper()
	root, _ := testkit.ParseSnippet(t, input)
	out, err := NewDisambiguator(root, testkit.FillTable(t, root), opts).Run()
	if err != nil {
		t.Fatalf("disambiguate %q: %v", input, err)
	}
	return root, out
}

func printed(b *ast.Block) string {
	return strings.TrimSpace(string(format.Print(b, format.Options{})))
}

func TestDisambiguateSiblingCollision(t *testing.T) {
	_, out := disambiguate(t, "{ { let x := 1 } { let x := 2 } }", Options{})
	want := "{\n    {\n        let x := 1\n    }\n    {\n        let x_1 := 2\n    }\n}"
	if got := printed(out); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestDisambiguateProperties(t *testing.T) {
	inputs := []string{
		"{ let a := 1 { let a := 2 let b := a } a := 2 }",
		"{ function f(a) -> r { r := a } function g(a) -> r { r := f(a) } let a := g(1) }",
		"{ for { let i := 0 } lt(i, 10) { i := add(i, 1) } { let i2 := i } for { let i := 0 } i { } { } }",
		"{ switch 1 case 1 { let x } case 2 { let x } default { let x } }",
		"{ l: jump(l) { l: } =: y let y }",
		"{ function x() { function x() { } x() } x() }",
	}
	for _, in := range inputs {
		root, out := disambiguate(t, in, Options{})

		if err := ast.SameShape(root, out); err != nil {
			t.Fatalf("%q: shape changed: %v", in, err)
		}
		if err := testkit.CheckUniqueDeclarations(out); err != nil {
			t.Fatalf("%q: names not unique: %v", in, err)
		}
		before, err := testkit.Occurrences(root, testkit.FillTable(t, root))
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		after, err := testkit.Occurrences(out, testkit.FillTable(t, out))
		if err != nil {
			t.Fatalf("%q: output does not resolve: %v", in, err)
		}
		if err := testkit.CheckConsistentRenaming(before, after); err != nil {
			t.Fatalf("%q: %v\n%s", in, err, printed(out))
		}
	}
}

func TestDisambiguateIsIdempotent(t *testing.T) {
	_, once := disambiguate(t, "{ { let x } { let x } function f(x) { } }", Options{})
	twice, err := NewDisambiguator(once, testkit.FillTable(t, once), Options{}).Run()
	if err != nil {
		t.Fatal(err)
	}
	if printed(once) != printed(twice) {
		t.Fatalf("unique names must be kept:\n%s\n---\n%s", printed(once), printed(twice))
	}
}

func TestDisambiguateDoesNotShareNodes(t *testing.T) {
	root, out := disambiguate(t, "{ let x := add(1, 2) { let x } }", Options{})
	before := printed(root)

	inner := out.Statements[1].(*ast.Block)
	inner.Statements[0].(*ast.VariableDeclaration).Variables[0].Name = "changed"
	out.Statements[0].(*ast.VariableDeclaration).Value.(*ast.FunctionalInstruction).Arguments[0].(*ast.Literal).Value = "9"

	if printed(root) != before {
		t.Fatalf("mutating the output changed the input")
	}
	if out == root || inner == root.Statements[1] {
		t.Fatalf("output must be freshly allocated")
	}
}

func TestDisambiguateKeepsSpans(t *testing.T) {
	root, out := disambiguate(t, "{ let x := 1 }", Options{})
	if out.Span != root.Span || out.Statements[0].Pos() != root.Statements[0].Pos() {
		t.Fatalf("spans must be preserved")
	}
}

func TestDisambiguateOptions(t *testing.T) {
	_, out := disambiguate(t, "{ { let main } { let main } }", Options{Separator: "$", Reserved: []string{"main"}})
	got := printed(out)
	if !strings.Contains(got, "let main$1") || !strings.Contains(got, "let main$2") {
		t.Fatalf("reserved name must be skipped with custom separator:\n%s", got)
	}
}

func TestDisambiguateStats(t *testing.T) {
	root, _ := testkit.ParseSnippet(t, "{ { let x } { let x } { let x } }")
	d := NewDisambiguator(root, testkit.FillTable(t, root), Options{})
	if _, err := d.Run(); err != nil {
		t.Fatal(err)
	}
	if st := d.Stats(); st.Symbols != 3 || st.Renamed != 2 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestDisambiguateSingleUse(t *testing.T) {
	root, _ := testkit.ParseSnippet(t, "{ }")
	d := NewDisambiguator(root, testkit.FillTable(t, root), Options{})
	if _, err := d.Run(); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Run(); !errors.Is(err, ErrAlreadyRun) {
		t.Fatalf("expected ErrAlreadyRun, got %v", err)
	}
}

func TestDisambiguateUnresolved(t *testing.T) {
	root, _ := testkit.ParseSnippet(t, "{ let x := y }")
	_, err := NewDisambiguator(root, testkit.FillTable(t, root), Options{}).Run()
	var ie *InternalError
	if !errors.As(err, &ie) || !errors.Is(err, ErrUnresolved) {
		t.Fatalf("expected unresolved internal error, got %v", err)
	}
	if ie.Detail != "y" || ie.Pass != "disambiguate" || ie.Span.Start != 11 {
		t.Fatalf("unexpected error details: %+v", ie)
	}
}

func TestDisambiguateOuterVariableInFunction(t *testing.T) {
	root, _ := testkit.ParseSnippet(t, "{ let v function f() { v := 1 } }")
	_, err := NewDisambiguator(root, testkit.FillTable(t, root), Options{}).Run()
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("outer variables are invisible in functions, got %v", err)
	}
}

func TestDisambiguateMissingScope(t *testing.T) {
	root, _ := testkit.ParseSnippet(t, "{ { } }")
	// таблица от другого дерева: блоки не совпадают по идентичности
	other, _ := testkit.ParseSnippet(t, "{ { } }")
	_, err := NewDisambiguator(root, testkit.FillTable(t, other), Options{}).Run()
	if !errors.Is(err, ErrMissingScope) {
		t.Fatalf("expected ErrMissingScope, got %v", err)
	}

	fn, _ := testkit.ParseSnippet(t, "{ function f() { } }")
	table := symbols.NewTable(symbols.Hints{}, nil)
	table.BindBlock(fn, table.Scopes.New(symbols.ScopeBlock, symbols.NoScopeID, source.Span{}))
	_, err = NewDisambiguator(fn, table, Options{}).Run()
	if !errors.Is(err, ErrMissingScope) {
		t.Fatalf("function without scope must fail, got %v", err)
	}
}

func TestDisambiguateNilRoot(t *testing.T) {
	out, err := NewDisambiguator(nil, symbols.NewTable(symbols.Hints{}, nil), Options{}).Run()
	if err != nil || out == nil || len(out.Statements) != 0 {
		t.Fatalf("nil root must give an empty block, got %v %v", out, err)
	}
}

func TestRecoverBailoutRepanicsForeignPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("foreign panic must propagate, got %v", r)
		}
	}()
	func() (err error) {
		defer recoverBailout(&err)
		panic("boom")
	}()
}
