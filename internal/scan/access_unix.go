//go:build unix

package scan

import (
	"path/filepath"

	"golang.org/x/sys/unix"
)

// canRemove reports whether unlinking path is expected to succeed, by
// checking write access on the parent directory. Used by dry runs to
// flag deletions that would fail for real.
func canRemove(path string) bool {
	return unix.Access(filepath.Dir(path), unix.W_OK) == nil
}
