package scan

import (
	"path/filepath"
	"strings"
	"time"
)

// IsStale reports whether a file last accessed at lastAccess has gone
// unused for longer than maxAge as of now.
func IsStale(lastAccess, now time.Time, maxAge time.Duration) bool {
	return now.Sub(lastAccess) > maxAge
}

// ExtSet is a set of protected file extensions, lowercase with leading dot.
type ExtSet map[string]struct{}

// NewExtSet builds an ExtSet from a list of extensions. Entries are
// normalized to lowercase; a missing leading dot is added.
func NewExtSet(exts []string) ExtSet {
	set := make(ExtSet, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}

// Protected reports whether the path's extension (the suffix after the
// final dot of the final segment, compared case-insensitively) is in the
// set. Protected files are never deleted regardless of staleness.
func (s ExtSet) Protected(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	_, ok := s[ext]
	return ok
}
