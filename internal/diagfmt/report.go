package diagfmt

import "io"

// FileReportJSON is the per-file entry of a machine-readable run report.
type FileReportJSON struct {
	Path        string           `json:"path"`
	Inlinable   []string         `json:"inlinable"`
	Cached      bool             `json:"cached,omitempty"`
	Error       string           `json:"error,omitempty"`
	Diagnostics []DiagnosticJSON `json:"diagnostics,omitempty"`
}

// ReportOutput is the root of `asmopt inlinable --format json`.
type ReportOutput struct {
	Files []FileReportJSON `json:"files"`
	Count int              `json:"count"`
}

// Report writes files as indented JSON. Nil name lists are written as [].
func Report(w io.Writer, files []FileReportJSON) error {
	for i := range files {
		if files[i].Inlinable == nil {
			files[i].Inlinable = []string{}
		}
	}
	if files == nil {
		files = []FileReportJSON{}
	}
	return writeJSON(w, ReportOutput{Files: files, Count: len(files)})
}
