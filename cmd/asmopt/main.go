package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"asmopt/internal/version"
)

// errFailed сигнализирует, что диагностики уже напечатаны и нужно выйти с 1.
var errFailed = errors.New("asmopt: errors reported")

// stopProfiling is set by the root pre-run hook; PostRun hooks are skipped
// when a command fails, so main calls it after Execute.
var stopProfiling = func() {}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "asmopt",
		Short:         "Assembly IR optimiser",
		Long:          `asmopt parses assembly IR, gives every declaration a unique name and reports functions that can be inlined`,
		Version:       version.Current().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "path to asmopt.toml (default: search upward from the working directory)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Int("jobs", 0, "max parallel workers (0=auto)")
	pf.String("ui", "auto", "progress UI (auto|on|off)")
	pf.Bool("timings", false, "show timing information")
	pf.Bool("no-cache", false, "disable the on-disk result cache")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "ring", "trace storage mode (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "ring buffer capacity in events")
	pf.Duration("trace-heartbeat", 0, "emit heartbeat events at this interval (0=off)")
	pf.String("cpu-profile", "", "write a CPU profile to this file")
	pf.String("mem-profile", "", "write a heap profile to this file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to this file")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		stop, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		stopProfiling = stop
		return nil
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newDisambiguateCmd())
	rootCmd.AddCommand(newInlinableCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// main builds the command tree and executes it. Any error, including
// reported diagnostics, exits with status 1.
func main() {
	err := newRootCmd().Execute()
	stopProfiling()
	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "asmopt: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
