package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	// Test that default values are set
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if strings.Contains(Version, "\x1b[") {
		t.Errorf("Version must stay plain text, got %q", Version)
	}
}

func TestCurrentTrimsAndDefaults(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	t.Cleanup(func() { Version, GitCommit = origVersion, origCommit })

	Version = "  "
	GitCommit = " abc123\n"
	info := Current()
	if info.Version != "dev" {
		t.Errorf("Version = %q, want dev", info.Version)
	}
	if info.GitCommit != "abc123" {
		t.Errorf("GitCommit = %q, want abc123", info.GitCommit)
	}
}

func TestColored(t *testing.T) {
	tests := []struct {
		in      string
		enabled bool
		plain   bool
	}{
		{"1.2.3", false, true},
		{"0.1.0-dev", false, true},
		{"1.2.3-rc.1", true, false},
		{"dev", true, true},
	}
	for _, tt := range tests {
		got := Colored(tt.in, tt.enabled)
		if tt.plain && got != tt.in {
			t.Errorf("Colored(%q, %v) = %q, want unchanged", tt.in, tt.enabled, got)
		}
		if !tt.plain {
			if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-rc.1") {
				t.Errorf("Colored(%q, %v) = %q, want colored with suffix", tt.in, tt.enabled, got)
			}
		}
	}
}

func TestColoredDoesNotLeakState(t *testing.T) {
	_ = Colored("1.2.3", true)
	if got := Colored("1.2.3", false); got != "1.2.3" {
		t.Fatalf("disabled rendering after enabled one = %q", got)
	}
}
