package driver

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"fortio.org/safecast"

	"asmopt/internal/ast"
	"asmopt/internal/diag"
	"asmopt/internal/format"
	"asmopt/internal/lexer"
	"asmopt/internal/observ"
	"asmopt/internal/opt"
	"asmopt/internal/parser"
	"asmopt/internal/source"
	"asmopt/internal/symbols"
	"asmopt/internal/trace"
)

// FileResult is the outcome of running the pipeline over one file.
type FileResult struct {
	Path      string
	File      *source.File // nil when loading failed
	Bag       *diag.Bag
	Output    []byte   // printed tree (parse, disambiguate)
	Inlinable []string // sorted names (inlinable)
	Stats     opt.Stats
	Cached    bool
	Err       error // fatal pass error, e.g. *opt.InternalError
	Timer     *observ.Timer
}

// Failed reports whether the file produced error diagnostics or a fatal error.
func (r *FileResult) Failed() bool {
	return r.Err != nil || (r.Bag != nil && r.Bag.HasErrors())
}

// errStop прерывает конвейер файла после стадии с ошибками.
var errStop = errors.New("stage reported errors")

type fileRun struct {
	ctx   context.Context
	opts  *Options
	res   *FileResult
	timer *observ.Timer
}

// stage times fn, wraps it in a trace span and reports progress.
func (r *fileRun) stage(stage Stage, fn func() error) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}
	emit(r.opts.Progress, Event{File: r.res.Path, Stage: stage, Status: StatusWorking})
	span, _ := trace.Start(r.ctx, trace.ScopePass, string(stage))
	idx := -1
	if r.timer != nil {
		idx = r.timer.Begin(string(stage))
	}
	start := time.Now()

	err := fn()
	if err == nil && r.res.Bag.HasErrors() {
		err = errStop
	}

	if r.timer != nil {
		r.timer.End(idx, "")
	}
	detail := "ok"
	if err != nil {
		detail = err.Error()
	}
	span.End(detail)
	if err != nil {
		emit(r.opts.Progress, Event{File: r.res.Path, Stage: stage, Status: StatusError, Err: err, Elapsed: time.Since(start)})
	}
	return err
}

// processFile runs load → parse → scope → disambiguate → inlinable → print
// over one already loaded file. It never returns an error: problems end up
// in the result's bag or Err field. Only context cancellation is returned.
func processFile(ctx context.Context, fs *source.FileSet, fileID source.FileID, path string, opts *Options) (FileResult, error) {
	res := FileResult{
		Path: path,
		File: fs.Get(fileID),
		Bag:  diag.NewBag(opts.MaxDiagnostics),
	}
	fileSpan, ctx := trace.Start(ctx, trace.ScopeFile, path)
	defer func() { fileSpan.End("") }()

	run := &fileRun{ctx: ctx, opts: opts, res: &res}
	if opts.EnableTimings {
		run.timer = observ.NewTimer()
		res.Timer = run.timer
	}

	file := res.File
	key := cacheKey(file.Hash, opts)
	if opts.Cache != nil {
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		if err == nil && hit && payload.Command == opts.Command.String() {
			res.Output = payload.Output
			res.Inlinable = payload.Inlinable
			res.Stats = opt.Stats{Symbols: payload.Symbols, Renamed: payload.Renamed}
			res.Cached = true
			trace.Point(ctx, trace.ScopeFile, "cache_hit", path)
			emit(opts.Progress, Event{File: path, Status: StatusDone})
			return res, nil
		}
	}

	err := runStages(run, file)
	switch {
	case err == nil:
	case errors.Is(err, errStop):
		return res, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return res, err
	default:
		res.Err = err
		return res, nil
	}

	if opts.Cache != nil {
		payload := &DiskPayload{
			Command:   opts.Command.String(),
			Output:    res.Output,
			Inlinable: res.Inlinable,
			Symbols:   res.Stats.Symbols,
			Renamed:   res.Stats.Renamed,
		}
		if err := opts.Cache.Put(key, payload); err != nil {
			trace.Point(ctx, trace.ScopeFile, "cache_put_failed", err.Error())
		}
	}
	emit(opts.Progress, Event{File: path, Status: StatusDone})
	return res, nil
}

func runStages(run *fileRun, file *source.File) error {
	res, opts := run.res, run.opts
	reporter := &diag.BagReporter{Bag: res.Bag}

	var root *ast.Block
	err := run.stage(StageParse, func() error {
		maxErrors, err := safecast.Conv[uint](max(opts.MaxDiagnostics, 0))
		if err != nil {
			return fmt.Errorf("max diagnostics: %w", err)
		}
		lx := lexer.New(file, lexer.Options{Reporter: reporter})
		root = parser.ParseFile(lx, parser.Options{MaxErrors: maxErrors, Reporter: reporter}).Block
		return nil
	})
	if err != nil {
		return err
	}
	if opts.Command == CommandParse {
		return run.stage(StagePrint, func() error {
			res.Output = format.Print(root, opts.Format)
			return nil
		})
	}

	var table *symbols.Table
	err = run.stage(StageScope, func() error {
		table = symbols.Fill(root, symbols.FillOptions{Reporter: reporter})
		if res.Bag.HasErrors() {
			return nil
		}
		return table.Validate()
	})
	if err != nil {
		return err
	}

	var out *ast.Block
	err = run.stage(StageDisambiguate, func() error {
		d := opt.NewDisambiguator(root, table, opts.Disambiguate)
		var runErr error
		out, runErr = d.Run()
		res.Stats = d.Stats()
		return runErr
	})
	if err != nil {
		return err
	}

	if opts.Command == CommandInlinable {
		return run.stage(StageInlinable, func() error {
			found, err := opt.NewInlinableFunctionFilter().Run(out)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(found))
			for name := range found {
				names = append(names, name)
			}
			slices.Sort(names)
			res.Inlinable = names
			return nil
		})
	}

	return run.stage(StagePrint, func() error {
		res.Output = format.Print(out, opts.Format)
		return nil
	})
}
