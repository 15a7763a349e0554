package main

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"asmopt/internal/builtins"
	"asmopt/internal/config"
	"asmopt/internal/opt"
)

// settings is the effective configuration of one invocation: defaults,
// then asmopt.toml, then ASMOPT_* variables, then flags set explicitly.
type settings struct {
	cfg config.Config

	color          bool
	ui             uiMode
	timings        bool
	traceMode      string
	traceRingSize  int
	traceHeartbeat time.Duration
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	if flags.Changed("jobs") {
		if cfg.Driver.Jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("no-cache") {
		noCache, err := flags.GetBool("no-cache")
		if err != nil {
			return nil, err
		}
		cfg.Driver.Cache = !noCache
	}
	if flags.Changed("max-diagnostics") {
		if cfg.Driver.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("trace-level") {
		if cfg.Trace.Level, err = flags.GetString("trace-level"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("trace") {
		if cfg.Trace.Output, err = flags.GetString("trace"); err != nil {
			return nil, err
		}
	}
	if f := flags.Lookup("separator"); f != nil && f.Changed {
		cfg.Disambiguate.Separator = f.Value.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &settings{cfg: cfg}
	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, err
	}
	if s.color, err = readColorMode(colorFlag); err != nil {
		return nil, err
	}
	uiFlag, err := flags.GetString("ui")
	if err != nil {
		return nil, err
	}
	if s.ui, err = readUIMode(uiFlag); err != nil {
		return nil, err
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, err
	}
	if s.traceMode, err = flags.GetString("trace-mode"); err != nil {
		return nil, err
	}
	if s.traceRingSize, err = flags.GetInt("trace-ring-size"); err != nil {
		return nil, err
	}
	if s.traceHeartbeat, err = flags.GetDuration("trace-heartbeat"); err != nil {
		return nil, err
	}
	return s, nil
}

func readColorMode(value string) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return isTerminal(os.Stderr), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// disambiguateOptions pins builtin names and the configured reserved ones so
// that renamed identifiers never collide with them.
func (s *settings) disambiguateOptions() opt.Options {
	reserved := slices.Concat(builtins.Names(), s.cfg.Disambiguate.Reserved)
	slices.Sort(reserved)
	return opt.Options{
		Separator: s.cfg.Disambiguate.Separator,
		Reserved:  slices.Compact(reserved),
	}
}
