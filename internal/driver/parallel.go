package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"asmopt/internal/diag"
	"asmopt/internal/source"
	"asmopt/internal/trace"
)

// SourceExt is the extension picked up when a directory is given.
const SourceExt = ".asm"

// ListFiles разворачивает аргументы: файлы берутся как есть, каталоги
// обходятся рекурсивно в поиске *.asm. Результат отсортирован и без дублей.
func ListFiles(targets []string) ([]string, error) {
	seen := make(map[string]struct{}, len(targets))
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}
	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			// пусть ошибку загрузки покажет сам конвейер
			add(target)
			continue
		}
		if !info.IsDir() {
			add(target)
			continue
		}
		err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", target, err)
		}
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// Run processes every file of targets concurrently and returns results in
// the order of ListFiles. Per-file problems land in the results; the error
// is reserved for listing failures and context cancellation.
func Run(ctx context.Context, targets []string, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := ListFiles(targets)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	runSpan, ctx := trace.Start(ctx, trace.ScopeDriver, "run")
	runSpan.WithExtra("command", opts.Command.String()).WithExtra("files", fmt.Sprint(len(files)))
	defer func() { runSpan.End("") }()

	emitQueued(opts.Progress, files)

	// Предзагружаем все файлы последовательно, чтобы FileID были стабильными
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error, len(files))
	for i, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[i] = err
			continue
		}
		fileIDs[i] = fileID
	}

	// Настраиваем параллелизм
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErr, failed := loadErrors[i]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+loadErr.Error()))
				results[i] = FileResult{Path: path, Bag: bag}
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
				return nil
			}
			res, err := processFile(gctx, fileSet, fileIDs[i], path, &opts)
			results[i] = res
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
