package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"asmopt/internal/diag"
	"asmopt/internal/source"
)

type palette struct {
	err, warn, info, code, path, note, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgCyan),
		code:  color.New(color.Faint),
		path:  color.New(color.Bold),
		note:  color.New(color.FgBlue),
		caret: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.note, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
// Диагностики ввода-вывода печатаются без позиции.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		sev := pal.severity(d.Severity)
		var f *source.File
		if hasLocation(d) {
			f = fs.Get(d.Primary.File)
		}
		if f == nil {
			fmt.Fprintf(w, "%s %s: %s\n", sev.Sprint(d.Severity), pal.code.Sprint(d.Code.ID()), d.Message)
			continue
		}
		start, end := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			pal.path.Sprintf("%s:%d:%d", formatPath(f.Path, opts.PathMode), start.Line, start.Col),
			sev.Sprint(d.Severity), pal.code.Sprint(d.Code.ID()), d.Message)
		if opts.Context {
			writeContext(w, f, start, end, pal)
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			if nf == nil {
				fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("note:"), n.Msg)
				continue
			}
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s: %s %s\n",
				pal.path.Sprintf("%s:%d:%d", formatPath(nf.Path, opts.PathMode), ns.Line, ns.Col),
				pal.note.Sprint("note:"), n.Msg)
		}
	}
}

// writeContext prints the primary line and a caret under the span; spans
// that cross lines are underlined up to the end of the first line.
func writeContext(w io.Writer, f *source.File, start, end source.LineCol, pal palette) {
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)
	width := 1
	switch {
	case end.Line == start.Line && end.Col > start.Col:
		width = int(end.Col - start.Col)
	case end.Line > start.Line:
		width = max(len(line)-int(start.Col)+1, 1)
	}
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "    %s%s\n", caretPadding(line, int(start.Col)-1), pal.caret.Sprint(marker))
}

// caretPadding keeps tabs so that the caret lines up under tab-indented code.
func caretPadding(line string, col int) string {
	col = min(max(col, 0), len(line))
	var sb strings.Builder
	for i := range col {
		if line[i] == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func hasLocation(d diag.Diagnostic) bool {
	return d.Code < diag.IOLoadFileError || !d.Primary.Empty()
}
