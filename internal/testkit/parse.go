package testkit

import (
	"fmt"
	"strings"
	"testing"

	"asmopt/internal/ast"
	"asmopt/internal/diag"
	"asmopt/internal/lexer"
	"asmopt/internal/parser"
	"asmopt/internal/source"
	"asmopt/internal/symbols"
)

// Summary renders a bag as "[CODE] message; ..." for failure messages.
func Summary(bag *diag.Bag) string {
	if bag == nil || bag.Len() == 0 {
		return "<none>"
	}
	lines := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		lines = append(lines, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return strings.Join(lines, "; ")
}

// ParseSnippet parses input and fails tb on any diagnostic.
func ParseSnippet(tb testing.TB, input string) (*ast.Block, *source.File) {
	tb.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("snippet.asm", []byte(input)))
	bag := diag.NewBag(100)
	rep := &diag.BagReporter{Bag: bag}
	res := parser.ParseFile(lexer.New(file, lexer.Options{Reporter: rep}), parser.Options{Reporter: rep})
	if bag.HasErrors() {
		tb.Fatalf("unexpected diagnostics for %q: %s", input, Summary(bag))
	}
	return res.Block, file
}

// FillTable builds and validates the scope table for root, failing tb on
// duplicate declarations.
func FillTable(tb testing.TB, root *ast.Block) *symbols.Table {
	tb.Helper()
	bag := diag.NewBag(100)
	table := symbols.Fill(root, symbols.FillOptions{Reporter: &diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		tb.Fatalf("unexpected scope diagnostics: %s", Summary(bag))
	}
	if err := table.Validate(); err != nil {
		tb.Fatalf("invalid scope table: %v", err)
	}
	return table
}
