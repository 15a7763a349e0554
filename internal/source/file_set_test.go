package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.asm", []byte("{\n  let x := 1\n}\n"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}}, // перевод строки принадлежит первой строке
		{2, LineCol{Line: 2, Col: 1}},
		{8, LineCol{Line: 2, Col: 7}},
		{15, LineCol{Line: 3, Col: 1}},
	}
	for _, tc := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
		if start != tc.want {
			t.Errorf("offset %d: got %+v, want %+v", tc.off, start, tc.want)
		}
	}
}

func TestFileSetLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.asm")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("{\r\n  let x := 1\r\n}\r\n")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "{\n  let x := 1\n}\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
	if got := f.GetLine(2); got != "  let x := 1" {
		t.Fatalf("line 2: got %q", got)
	}
	if got, ok := fs.GetByPath(path); !ok || got.ID != id {
		t.Fatalf("GetByPath did not return loaded file")
	}
}

func TestNormalizeComposesUnicode(t *testing.T) {
	// "é" как e + combining acute
	decomposed := []byte("let cafe\u0301 := 1")
	out, flags := Normalize(decomposed)
	if string(out) != "let caf\u00e9 := 1" {
		t.Fatalf("expected NFC output, got %q", out)
	}
	if flags&FileNormalizedNFC == 0 {
		t.Fatalf("expected NFC flag")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Fatalf("cover: got %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("cover across files must be a no-op, got %v", got)
	}
}
