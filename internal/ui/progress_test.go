package ui

import (
	"strings"
	"testing"

	"asmopt/internal/driver"
)

func TestProgressModelTracksEvents(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("disambiguate", []string{"a.asm", "b.asm"}, events).(*progressModel)

	m.applyEvent(driver.Event{File: "a.asm", Stage: driver.StageParse, Status: driver.StatusWorking})
	if m.items[0].status != "parsing" {
		t.Fatalf("status = %q, want parsing", m.items[0].status)
	}
	m.applyEvent(driver.Event{File: "a.asm", Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.asm", Stage: driver.StageScope, Status: driver.StatusError})
	if m.items[0].status != "done" || m.items[1].status != "error" {
		t.Fatalf("statuses = %q, %q", m.items[0].status, m.items[1].status)
	}
	if got := m.percent(); got != 1.0 {
		t.Fatalf("percent = %v, want 1", got)
	}

	// неизвестные файлы игнорируются
	m.applyEvent(driver.Event{File: "c.asm", Status: driver.StatusDone})
	if len(m.items) != 2 {
		t.Fatalf("unknown file added an item")
	}
}

func TestProgressPercentByStage(t *testing.T) {
	m := NewProgressModel("parse", []string{"a.asm", "b.asm"}, nil).(*progressModel)
	m.applyEvent(driver.Event{File: "a.asm", Stage: driver.StageDisambiguate, Status: driver.StatusWorking})
	if got, want := m.percent(), 0.3; got != want {
		t.Fatalf("percent = %v, want %v", got, want)
	}
}

func TestViewListsFiles(t *testing.T) {
	m := NewProgressModel("inlinable", []string{"a.asm"}, nil).(*progressModel)
	view := m.View()
	if !strings.Contains(view, "inlinable") || !strings.Contains(view, "a.asm") || !strings.Contains(view, "queued") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestSummaryCountsFailures(t *testing.T) {
	m := NewProgressModel("parse", []string{"a.asm", "b.asm", "c.asm"}, nil).(*progressModel)
	m.applyEvent(driver.Event{File: "a.asm", Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.asm", Stage: driver.StageParse, Status: driver.StatusError})
	if got, want := m.summary(), "  2/3 files, 1 failed"; got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
}

func TestTruncate(t *testing.T) {
	got := truncate("internal/very/long/path.asm", 10)
	if len(got) > 10 || !strings.HasPrefix(got, "inte") || !strings.HasSuffix(got, "...") {
		t.Fatalf("truncate = %q", got)
	}
	if got = truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
}
