package parser

import (
	"fmt"
	"strings"
	"testing"

	"asmopt/internal/ast"
	"asmopt/internal/diag"
	"asmopt/internal/lexer"
	"asmopt/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, input string) (*ast.Block, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.asm", []byte(input))
	bag := diag.NewBag(100)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	res := ParseFile(lx, Options{MaxErrors: 100, Reporter: reporter})
	return res.Block, res.Bag
}

// parseSnippet parses input and fails the test on any diagnostic.
func parseSnippet(t *testing.T, input string) *ast.Block {
	t.Helper()
	block, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %s", input, diagnosticsSummary(bag))
	}
	return block
}

func expectCode(t *testing.T, input string, code diag.Code) {
	t.Helper()
	_, bag := parseSource(t, input)
	for _, d := range bag.Items() {
		if d.Code == code {
			return
		}
	}
	t.Fatalf("expected %s for %q, got %s", code.ID(), input, diagnosticsSummary(bag))
}
