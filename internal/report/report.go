// Package report writes the deleted-files report: plain UTF-8 text, one
// absolute path per line, overwritten on each run.
package report

import (
	"fmt"
	"os"

	"github.com/guialves/fallow/internal/scan"
)

// Writer appends one line per deleted file. Lines are written unbuffered
// as deletions happen, so an aborted run still leaves a complete record
// of everything removed before the failure.
type Writer struct {
	f     *os.File
	path  string
	count int
}

// NewWriter opens (and truncates) the report file at path.
func NewWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening report %s: %w", path, err)
	}
	return &Writer{f: f, path: path}, nil
}

// Record writes the record's path as one newline-terminated line.
func (w *Writer) Record(rec scan.FileRecord) error {
	if _, err := fmt.Fprintln(w.f, rec.Path); err != nil {
		return fmt.Errorf("writing report %s: %w", w.path, err)
	}
	w.count++
	return nil
}

// Count returns the number of lines written so far.
func (w *Writer) Count() int { return w.count }

// Path returns the report file location.
func (w *Writer) Path() string { return w.path }

// Close releases the underlying file handle.
func (w *Writer) Close() error { return w.f.Close() }
