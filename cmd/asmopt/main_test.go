package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"asmopt/internal/config"
	"asmopt/internal/diagfmt"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	for _, name := range []string{config.EnvJobs, config.EnvNoCache, config.EnvTraceLevel, config.EnvTrace, config.EnvSeparator} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--ui", "off", "--color", "off"}, args...))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDisambiguateCommand(t *testing.T) {
	isolate(t)
	path := writeSource(t, t.TempDir(), "main.asm", "{ { let x := 1 } { let x := 2 } }")
	stdout, stderr, err := execute(t, "disambiguate", path)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, stderr)
	}
	want := "{\n    {\n        let x := 1\n    }\n    {\n        let x_1 := 2\n    }\n}\n"
	if stdout != want {
		t.Fatalf("stdout:\n%s\nwant:\n%s", stdout, want)
	}
}

func TestSeparatorPrecedence(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeSource(t, dir, "p.asm", "{ { let x } { let x } }")
	cfgPath := writeSource(t, dir, config.FileName, "[disambiguate]\nseparator = \"$\"\n")

	stdout, _, err := execute(t, "--config", cfgPath, "disambiguate", path)
	if err != nil || !strings.Contains(stdout, "x$1") {
		t.Fatalf("file separator not applied: err=%v\n%s", err, stdout)
	}

	t.Setenv(config.EnvSeparator, "__")
	stdout, _, err = execute(t, "--config", cfgPath, "disambiguate", path)
	if err != nil || !strings.Contains(stdout, "x__1") {
		t.Fatalf("env separator should override the file: err=%v\n%s", err, stdout)
	}

	stdout, _, err = execute(t, "--config", cfgPath, "disambiguate", "--separator", "_v", path)
	if err != nil || !strings.Contains(stdout, "x_v1") {
		t.Fatalf("flag should override env: err=%v\n%s", err, stdout)
	}
}

func TestInlinableCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeSource(t, dir, "f.asm", "function f(a) -> r { r := a } function g() { }")

	stdout, stderr, err := execute(t, "inlinable", path)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, stderr)
	}
	if stdout != "f\n" {
		t.Fatalf("pretty output %q", stdout)
	}

	stdout, _, err = execute(t, "inlinable", "--format", "json", path)
	if err != nil {
		t.Fatalf("execute json: %v", err)
	}
	var report diagfmt.ReportOutput
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("decode %s: %v", stdout, err)
	}
	if report.Count != 1 || len(report.Files[0].Inlinable) != 1 || report.Files[0].Inlinable[0] != "f" {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestDiagnosticsExitWithFailure(t *testing.T) {
	isolate(t)
	path := writeSource(t, t.TempDir(), "bad.asm", "{ let := 1 }")
	stdout, stderr, err := execute(t, "parse", path)
	if !errors.Is(err, errFailed) {
		t.Fatalf("expected errFailed, got %v", err)
	}
	if stdout != "" {
		t.Fatalf("failed file must not print a tree: %q", stdout)
	}
	if !strings.Contains(stderr, "bad.asm:1:7: ERROR SYN") {
		t.Fatalf("diagnostic missing from stderr:\n%s", stderr)
	}
}

func TestInvalidFlags(t *testing.T) {
	isolate(t)
	path := writeSource(t, t.TempDir(), "ok.asm", "{ }")
	cases := [][]string{
		{"inlinable", "--format", "xml", path},
		{"--trace-level", "loud", "parse", path},
		{"--jobs", "-2", "parse", path},
	}
	for _, args := range cases {
		if _, _, err := execute(t, args...); err == nil || errors.Is(err, errFailed) {
			t.Fatalf("%v: expected a usage error, got %v", args, err)
		}
	}
}

func TestVersionJSON(t *testing.T) {
	stdout, _, err := execute(t, "version", "--format", "json", "--hash")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("decode %s: %v", stdout, err)
	}
	if payload.Tool != "asmopt" || payload.Version == "" || payload.GitCommit == "" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestReservedNamesAreSortedAndUnique(t *testing.T) {
	s := &settings{cfg: config.Default()}
	s.cfg.Disambiguate.Reserved = []string{"main", "add", "main"}
	got := s.disambiguateOptions().Reserved
	if !slices.IsSorted(got) {
		t.Fatalf("reserved names are not sorted: %v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Fatalf("duplicate reserved name %q", got[i])
		}
	}
	if !slices.Contains(got, "main") || !slices.Contains(got, "add") {
		t.Fatalf("missing reserved names: %v", got)
	}
}
