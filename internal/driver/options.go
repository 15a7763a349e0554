package driver

import (
	"fmt"

	"asmopt/internal/format"
	"asmopt/internal/opt"
)

// Command selects how far the pipeline runs and what it reports.
type Command uint8

const (
	// CommandParse parses and prints the canonical tree.
	CommandParse Command = iota + 1
	// CommandDisambiguate prints the tree with unique names.
	CommandDisambiguate
	// CommandInlinable reports the names of inlinable functions.
	CommandInlinable
)

func (c Command) String() string {
	switch c {
	case CommandParse:
		return "parse"
	case CommandDisambiguate:
		return "disambiguate"
	case CommandInlinable:
		return "inlinable"
	default:
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
}

// Options configures a driver run.
type Options struct {
	Command        Command
	Disambiguate   opt.Options
	Format         format.Options
	Jobs           int // <= 0 means GOMAXPROCS
	MaxDiagnostics int
	Cache          *DiskCache // nil disables caching
	Progress       ProgressSink
	EnableTimings  bool
}
