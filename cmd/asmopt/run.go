package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"asmopt/internal/diagfmt"
	"asmopt/internal/driver"
	"asmopt/internal/format"
	"asmopt/internal/source"
)

// pipelineRun is the shared part of parse, disambiguate and inlinable.
type pipelineRun struct {
	settings *settings
	fs       *source.FileSet
	results  []driver.FileResult
}

func runPipeline(cmd *cobra.Command, args []string, command driver.Command) (*pipelineRun, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	files, err := driver.ListFiles(args)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found", driver.SourceExt)
	}

	cleanup, err := setupTracing(cmd, s)
	if err != nil {
		return nil, err
	}

	opts := driver.Options{
		Command:        command,
		Disambiguate:   s.disambiguateOptions(),
		Format:         format.Options{},
		Jobs:           s.cfg.Driver.Jobs,
		MaxDiagnostics: s.cfg.Driver.MaxDiagnostics,
		EnableTimings:  s.timings,
	}
	if s.cfg.Driver.Cache {
		cache, cacheErr := driver.OpenDiskCache("asmopt")
		if cacheErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "asmopt: cache disabled: %v\n", cacheErr)
		} else {
			opts.Cache = cache
		}
	}

	var (
		fs      *source.FileSet
		results []driver.FileResult
	)
	if shouldUseTUI(s.ui, len(files)) {
		fs, results, err = runWithUI(cmd.Context(), command.String(), files, opts)
	} else {
		fs, results, err = driver.Run(cmd.Context(), files, opts)
	}

	failed := err != nil
	for i := range results {
		if results[i].Failed() {
			failed = true
		}
	}
	cleanup(failed)
	if err != nil {
		return nil, err
	}

	run := &pipelineRun{settings: s, fs: fs, results: results}
	run.reportProblems(cmd.ErrOrStderr())
	if s.timings {
		printTimings(cmd.ErrOrStderr(), command, results)
	}
	return run, nil
}

// reportProblems prints diagnostics and fatal pass errors of every file.
func (r *pipelineRun) reportProblems(w io.Writer) {
	opts := diagfmt.PrettyOpts{
		Color:     r.settings.color,
		ShowNotes: true,
		Context:   true,
	}
	for i := range r.results {
		res := &r.results[i]
		if res.Bag != nil && res.Bag.Len() > 0 {
			res.Bag.Sort()
			diagfmt.Pretty(w, res.Bag, r.fs, opts)
		}
		if res.Err != nil {
			fmt.Fprintf(w, "%s: internal error: %v\n", res.Path, res.Err)
		}
	}
}

func (r *pipelineRun) failed() bool {
	for i := range r.results {
		if r.results[i].Failed() {
			return true
		}
	}
	return false
}

// writeTrees prints the tree of every successful file; with several
// files each tree is preceded by a "// path" header.
func (r *pipelineRun) writeTrees(w io.Writer) error {
	multi := len(r.results) > 1
	for i := range r.results {
		res := &r.results[i]
		if res.Failed() {
			continue
		}
		if multi {
			if _, err := fmt.Fprintf(w, "// %s\n", res.Path); err != nil {
				return err
			}
		}
		if _, err := w.Write(res.Output); err != nil {
			return err
		}
	}
	return nil
}

func exitStatus(r *pipelineRun) error {
	if r.failed() {
		return errFailed
	}
	return nil
}
