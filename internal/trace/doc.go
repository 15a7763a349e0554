// Package trace records what the optimiser pipeline is doing.
//
// Tracing is enabled with the CLI flags:
//
//	asmopt disambiguate --trace=- --trace-level=phase prog.asm
//
// Tracers:
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes every event immediately (file or stderr)
//   - RingTracer: keeps the last N events for a dump after a fatal error
//   - MultiTracer: fans out to several tracers
//
// Levels: off, error (ring dump on fatal errors only), phase (driver and
// passes), detail (adds per-file events), debug (everything).
//
// Scopes, from coarse to fine: ScopeDriver, ScopePass, ScopeFile, ScopeNode.
//
// Tracers and the current span travel through context.Context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.Start(ctx, trace.ScopePass, "disambiguate")
//	defer span.End("")
package trace
