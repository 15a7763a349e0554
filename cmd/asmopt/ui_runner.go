package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"asmopt/internal/driver"
	"asmopt/internal/source"
	"asmopt/internal/ui"
)

type runOutcome struct {
	fs      *source.FileSet
	results []driver.FileResult
	err     error
}

// runWithUI runs the driver in the background and renders its progress
// events until the event channel is closed.
func runWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan runOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.Run(ctx, files, opts)
		outcomeCh <- runOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
