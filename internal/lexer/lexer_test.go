package lexer

import (
	"testing"

	"asmopt/internal/diag"
	"asmopt/internal/source"
	"asmopt/internal/token"
)

func lexAll(t *testing.T, input string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.asm", []byte(input))
	bag := diag.NewBag(100)
	lx := New(fs.Get(id), Options{Reporter: &diag.BagReporter{Bag: bag}})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
		if len(toks) > 1000 {
			t.Fatalf("lexer does not terminate")
		}
	}
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...token.Kind) []token.Token {
	t.Helper()
	toks, bag := lexAll(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %v", input, bag.Items())
	}
	got := kinds(toks)
	want = append(want, token.EOF)
	if len(got) != len(want) {
		t.Fatalf("%q: got %v, want %v", input, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d is %v, want %v (all: %v)", input, i, got[i], want[i], got)
		}
	}
	return toks
}

func TestLexDeclaration(t *testing.T) {
	toks := expectKinds(t, "{ let x := add(1, 0x2f) }",
		token.LBrace, token.KwLet, token.Ident, token.ColonAssign,
		token.Ident, token.LParen, token.NumberLit, token.Comma, token.NumberLit, token.RParen,
		token.RBrace)
	if toks[2].Text != "x" || toks[8].Text != "0x2f" {
		t.Fatalf("unexpected token text: %q %q", toks[2].Text, toks[8].Text)
	}
}

func TestLexFunctionHeader(t *testing.T) {
	expectKinds(t, "function f(a:u256, b) -> r { }",
		token.KwFunction, token.Ident, token.LParen, token.Ident, token.Colon, token.Ident,
		token.Comma, token.Ident, token.RParen, token.Arrow, token.Ident,
		token.LBrace, token.RBrace)
}

func TestLexStackAssignmentAndLabel(t *testing.T) {
	expectKinds(t, "loop: =: x",
		token.Ident, token.Colon, token.EqColon, token.Ident)
}

func TestLexDottedIdentifier(t *testing.T) {
	toks := expectKinds(t, "a.b.c", token.Ident)
	if toks[0].Text != "a.b.c" {
		t.Fatalf("expected dotted identifier, got %q", toks[0].Text)
	}
}

func TestLexKeywords(t *testing.T) {
	expectKinds(t, "switch case default for true false",
		token.KwSwitch, token.KwCase, token.KwDefault, token.KwFor, token.KwTrue, token.KwFalse)
}

func TestLexSkipsComments(t *testing.T) {
	expectKinds(t, "// comment\nx /* block\n comment */ y",
		token.Ident, token.Ident)
}

func TestLexString(t *testing.T) {
	toks := expectKinds(t, `"a\"b"`, token.StringLit)
	if toks[0].Text != `"a\"b"` {
		t.Fatalf("string text should include quotes and escapes, got %q", toks[0].Text)
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		input string
		code  diag.Code
	}{
		{`"abc`, diag.LexUnterminatedString},
		{"/* open", diag.LexUnterminatedBlockComment},
		{"12ab", diag.LexBadNumber},
		{"0x", diag.LexBadNumber},
		{"#", diag.LexUnknownChar},
		{"=", diag.LexUnknownChar},
	}
	for _, tc := range cases {
		_, bag := lexAll(t, tc.input)
		items := bag.Items()
		if len(items) == 0 || items[0].Code != tc.code {
			t.Fatalf("%q: expected %v, got %v", tc.input, tc.code, items)
		}
	}
}

func TestLexSpans(t *testing.T) {
	toks, _ := lexAll(t, "  let  xy")
	if toks[1].Span.Start != 7 || toks[1].Span.End != 9 {
		t.Fatalf("unexpected span for xy: %v", toks[1].Span)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("peek.asm", []byte("a b"))
	lx := New(fs.Get(id), Options{})
	if lx.Peek().Text != "a" || lx.Peek().Text != "a" {
		t.Fatalf("peek must be idempotent")
	}
	if lx.Next().Text != "a" || lx.Next().Text != "b" {
		t.Fatalf("next after peek returned wrong tokens")
	}
	if lx.Next().Kind != token.EOF || lx.Next().Kind != token.EOF {
		t.Fatalf("EOF must be sticky")
	}
}
