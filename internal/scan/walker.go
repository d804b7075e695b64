package scan

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxWarnings caps the warning list so a badly permissioned tree can't
// grow it without bound.
const maxWarnings = 500

// Walker produces every regular file reachable under a root directory.
// Traversal is sequential and depth-first; order across platforms is not
// guaranteed. Per-entry failures (permission denied, files vanishing
// mid-walk, broken symlinks) are recorded as warnings and skipped, never
// surfaced as errors — cleanup is best-effort.
type Walker struct {
	exclude  map[string]bool
	warnings []string
	scanned  int
}

// NewWalker creates a walker. exclude is a list of directory names
// (case-insensitive) to skip entirely.
func NewWalker(exclude []string) *Walker {
	excMap := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		excMap[strings.ToLower(e)] = true
	}
	return &Walker{exclude: excMap}
}

// Warnings returns the warnings accumulated during the walk.
func (w *Walker) Warnings() []string {
	return append([]string(nil), w.warnings...)
}

// Scanned returns the number of regular files visited.
func (w *Walker) Scanned() int {
	return w.scanned
}

// Walk calls fn for each regular file under root. Symlinks are never
// followed. The walk stops early only on context cancellation or an
// error returned by fn.
func (w *Walker) Walk(ctx context.Context, root string, fn func(path string, info os.FileInfo) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			// The root itself being unreadable is fatal; anything below
			// it is skipped with a warning.
			if path == root {
				return err
			}
			w.addWarning("cannot read " + path + ": " + describeError(err))
			return nil
		}

		if d.IsDir() {
			if path != root && w.exclude[strings.ToLower(d.Name())] {
				return fs.SkipDir
			}
			return nil
		}

		// Regular files only: symlinks, sockets, devices are left alone.
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			// Raced with a concurrent deletion, or permission problem.
			w.addWarning("cannot stat " + path + ": " + describeError(err))
			return nil
		}

		w.scanned++
		return fn(path, info)
	})
}

func (w *Walker) addWarning(msg string) {
	if len(w.warnings) < maxWarnings {
		w.warnings = append(w.warnings, msg)
	}
}

// describeError collapses an error into one of three buckets so log
// output stays scannable on trees with thousands of failures.
func describeError(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "not found"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	default:
		return err.Error()
	}
}
