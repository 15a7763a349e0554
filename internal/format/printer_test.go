package format

import (
	"strings"
	"testing"

	"asmopt/internal/ast"
	"asmopt/internal/diag"
	"asmopt/internal/lexer"
	"asmopt/internal/parser"
	"asmopt/internal/source"
)

func parseSnippet(t *testing.T, input string) *ast.Block {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("fmt.asm", []byte(input))
	bag := diag.NewBag(100)
	rep := &diag.BagReporter{Bag: bag}
	res := parser.ParseFile(lexer.New(fs.Get(id), lexer.Options{Reporter: rep}), parser.Options{Reporter: rep})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %v", input, bag.Items())
	}
	return res.Block
}

func TestPrintCanonical(t *testing.T) {
	input := `{ let x:u256 := add(1, 0x2) function f(a, b) -> r { r := a }
switch x case 1 { pop } default { } for { let i := 0 } lt(i, 3) { i := add(i, 1) } { } l: =: x }`
	want := `{
    let x:u256 := add(1, 0x2)
    function f(a, b) -> r {
        r := a
    }
    switch x
    case 1 {
        pop
    }
    default { }
    for {
        let i := 0
    } lt(i, 3) {
        i := add(i, 1)
    } { }
    l:
    =: x
}
`
	got := string(Print(parseSnippet(t, input), Options{}))
	if got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintRoundTrip(t *testing.T) {
	inputs := []string{
		"{ }",
		"{ { let a } }",
		`let s := "a\"b" f(s, true, false)`,
		"function g() { function h(x) -> y, z { y, z := g2(x) } }",
		"for { } 1 { } { switch 0 case 0:u8 { } }",
	}
	for _, in := range inputs {
		first := Print(parseSnippet(t, in), Options{})
		second := Print(parseSnippet(t, string(first)), Options{})
		if string(first) != string(second) {
			t.Fatalf("round trip of %q is not stable:\n%s\n---\n%s", in, first, second)
		}
		if err := ast.SameShape(parseSnippet(t, in), parseSnippet(t, string(first))); err != nil {
			t.Fatalf("printing %q changed the tree: %v", in, err)
		}
	}
}

func TestPrintTabs(t *testing.T) {
	out := string(Print(parseSnippet(t, "let x"), Options{UseTabs: true}))
	if out != "{\n\tlet x\n}\n" {
		t.Fatalf("unexpected tab output %q", out)
	}
}

func TestStringSingleNode(t *testing.T) {
	block := parseSnippet(t, "f(mload(0), y)")
	if got := String(block.Statements[0]); got != "f(mload(0), y)" {
		t.Fatalf("unexpected %q", got)
	}
	if !strings.HasPrefix(String(&ast.Block{}), "{ }") {
		t.Fatalf("empty block must print as { }")
	}
}
