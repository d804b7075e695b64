package scan

import "time"

// FileRecord describes one file considered during a scan. Size is
// captured at stat time, before any deletion, so the freed-byte total
// reflects what was actually on disk.
type FileRecord struct {
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	AccessTime time.Time `json:"access_time"`
}

// Result summarizes one scan-and-purge run. Deleted holds the files in
// the order they were removed; a path appears here only after its
// deletion succeeded (or, in a dry run, after it qualified).
type Result struct {
	ID          string       `json:"id"`
	Root        string       `json:"root"`
	DryRun      bool         `json:"dry_run"`
	StartedAt   time.Time    `json:"started_at"`
	CompletedAt time.Time    `json:"completed_at"`
	Deleted     []FileRecord `json:"deleted"`
	FreedBytes  int64        `json:"freed_bytes"`
	Scanned     int          `json:"scanned"`
	Fresh       int          `json:"fresh"`
	Protected   int          `json:"protected"`
	Failed      int          `json:"failed"`
	Warnings    []string     `json:"warnings,omitempty"`
}

// Duration returns the wall time the run took.
func (r *Result) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}
