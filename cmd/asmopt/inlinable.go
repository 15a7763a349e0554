package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"asmopt/internal/diagfmt"
	"asmopt/internal/driver"
)

func newInlinableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inlinable [flags] <file.asm|directory>...",
		Short: "List functions whose body is a single pure assignment to their one return value",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runInlinable,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().String("separator", "_", "separator used while disambiguating names first")
	return cmd
}

func runInlinable(cmd *cobra.Command, args []string) error {
	outFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	outFormat = strings.ToLower(outFormat)
	switch outFormat {
	case "pretty", "json":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", outFormat)
	}

	run, err := runPipeline(cmd, args, driver.CommandInlinable)
	if err != nil {
		return err
	}
	if outFormat == "json" {
		err = renderInlinableJSON(cmd.OutOrStdout(), run)
	} else {
		err = renderInlinablePretty(cmd.OutOrStdout(), run)
	}
	if err != nil {
		return err
	}
	return exitStatus(run)
}

// renderInlinablePretty prints one name per line; with several files the
// names are grouped under "path:" headers.
func renderInlinablePretty(w io.Writer, run *pipelineRun) error {
	multi := len(run.results) > 1
	for i := range run.results {
		res := &run.results[i]
		if res.Failed() {
			continue
		}
		indent := ""
		if multi {
			indent = "  "
			if _, err := fmt.Fprintf(w, "%s:\n", res.Path); err != nil {
				return err
			}
		}
		for _, name := range res.Inlinable {
			if _, err := fmt.Fprintf(w, "%s%s\n", indent, name); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderInlinableJSON(w io.Writer, run *pipelineRun) error {
	files := make([]diagfmt.FileReportJSON, 0, len(run.results))
	for i := range run.results {
		res := &run.results[i]
		entry := diagfmt.FileReportJSON{
			Path:      res.Path,
			Inlinable: res.Inlinable,
			Cached:    res.Cached,
		}
		if res.Err != nil {
			entry.Error = res.Err.Error()
		}
		if res.Bag != nil && res.Bag.Len() > 0 {
			entry.Diagnostics = diagfmt.BuildDiagnostics(res.Bag, run.fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
		}
		files = append(files, entry)
	}
	return diagfmt.Report(w, files)
}
