// Package diag defines the diagnostic model shared by the lexer, parser and
// scope filler.
//
// A Diagnostic carries a Severity, a numeric Code with a stable string form,
// a primary source.Span, a short message and optional notes. Producers emit
// through the Reporter interface; BagReporter collects into a Bag that the
// driver sorts and renders via internal/diagfmt.
//
// Fatal problems of the optimiser passes are not diagnostics: they are Go
// errors returned by the passes (see internal/opt).
package diag
