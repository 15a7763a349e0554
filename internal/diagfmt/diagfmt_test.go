package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"asmopt/internal/diag"
	"asmopt/internal/source"
)

func sample() (*source.FileSet, *diag.Bag) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.asm", []byte("{\n  let := 1\n}"))
	bag := diag.NewBag(10)
	d := diag.NewError(diag.SynExpectIdentifier, source.Span{File: id, Start: 8, End: 10}, "expected identifier")
	bag.Add(d.WithNote(source.Span{File: id, Start: 4, End: 7}, "declaration starts here"))
	return fs, bag
}

func TestPrettyWithContext(t *testing.T) {
	fs, bag := sample()
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: true, ShowNotes: true})
	want := "a.asm:2:7: ERROR SYN2004: expected identifier\n" +
		"      let := 1\n" +
		"          ^~\n" +
		"  a.asm:2:3: note: declaration starts here\n"
	if buf.String() != want {
		t.Fatalf("got:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestPrettyWithoutNotesOrContext(t *testing.T) {
	fs, bag := sample()
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if got := buf.String(); got != "a.asm:2:7: ERROR SYN2004: expected identifier\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestPrettyColorAddsEscapes(t *testing.T) {
	fs, bag := sample()
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: true})
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes in %q", buf.String())
	}
}

func TestPrettyIOWithoutLocation(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("unrelated.asm", []byte("{ }"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: missing.asm"))
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: true})
	if got := buf.String(); got != "ERROR IO4001: failed to load file: missing.asm\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestJSONPositions(t *testing.T) {
	fs, bag := sample()
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("unexpected output %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Code != "SYN2004" || d.Location == nil || d.Location.StartLine != 2 || d.Location.StartCol != 7 {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if len(d.Notes) != 1 || d.Notes[0].Location == nil || d.Notes[0].Location.StartCol != 3 {
		t.Fatalf("unexpected notes %+v", d.Notes)
	}
}

func TestReportWritesEmptyLists(t *testing.T) {
	var buf bytes.Buffer
	if err := Report(&buf, []FileReportJSON{{Path: "a.asm"}}); err != nil {
		t.Fatalf("Report: %v", err)
	}
	if !strings.Contains(buf.String(), `"inlinable": []`) {
		t.Fatalf("expected empty list in %s", buf.String())
	}
}
