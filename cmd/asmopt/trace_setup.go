package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"asmopt/internal/trace"
)

// setupTracing initializes the tracer from the effective settings and
// attaches it to the command context. The returned cleanup dumps the ring
// buffer to stderr when called with failed=true.
func setupTracing(cmd *cobra.Command, s *settings) (func(failed bool), error) {
	// Parse level
	level, err := trace.ParseLevel(s.cfg.Trace.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}

	// If level is off and no output specified, skip tracing
	if level == trace.LevelOff && s.cfg.Trace.Output == "" {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func(bool) {}, nil
	}
	if level == trace.LevelOff {
		// задан только файл: по умолчанию пишем фазы
		level = trace.LevelPhase
	}

	// Parse mode
	mode, err := trace.ParseMode(s.traceMode)
	if err != nil {
		return nil, fmt.Errorf("invalid trace mode: %w", err)
	}
	if s.cfg.Trace.Output != "" && mode == trace.ModeRing && level != trace.LevelError {
		mode = trace.ModeStream
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: s.cfg.Trace.Output,
		RingSize:   s.traceRingSize,
		Heartbeat:  s.traceHeartbeat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	// Attach tracer to context
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	// Start heartbeat if configured
	var heartbeat *trace.Heartbeat
	if s.traceHeartbeat > 0 {
		heartbeat = trace.StartHeartbeat(tracer, s.traceHeartbeat)
	}

	cleanup := func(failed bool) {
		// Stop heartbeat first
		if heartbeat != nil {
			heartbeat.Stop()
		}
		if failed {
			if err := trace.DumpRing(tracer, cmd.ErrOrStderr()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
			}
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return cleanup, nil
}
