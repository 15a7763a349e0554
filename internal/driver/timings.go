package driver

import (
	"asmopt/internal/observ"
)

// TimingPayload is the machine-readable form of a run's timings.
type TimingPayload struct {
	Kind    string          `json:"kind"`
	Files   int             `json:"files"`
	Cached  int             `json:"cached"`
	Total   observ.Report   `json:"total"`
	PerFile []FileTimingRow `json:"per_file,omitempty"`
}

type FileTimingRow struct {
	Path   string        `json:"path"`
	Report observ.Report `json:"report"`
}

// MergeTimings sums the per-file timers of results into one timer.
// Results without a timer (cache hits, load failures) are skipped.
func MergeTimings(results []FileResult) *observ.Timer {
	total := observ.NewTimer()
	for i := range results {
		total.Merge(results[i].Timer)
	}
	return total
}

// Timings builds the payload for kind (the command name).
func Timings(kind string, results []FileResult, perFile bool) TimingPayload {
	payload := TimingPayload{
		Kind:  kind,
		Files: len(results),
		Total: MergeTimings(results).Report(),
	}
	for i := range results {
		r := &results[i]
		if r.Cached {
			payload.Cached++
		}
		if perFile && r.Timer != nil {
			payload.PerFile = append(payload.PerFile, FileTimingRow{Path: r.Path, Report: r.Timer.Report()})
		}
	}
	return payload
}
