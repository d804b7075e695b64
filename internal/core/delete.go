package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/guialves/fallow/internal/config"
)

// SafeDelete removes the file or directory at path after verifying it is
// not a protected system location. It returns the number of bytes freed.
// In dryRun mode nothing is removed; the size that would have been freed
// is returned instead.
func SafeDelete(path string, dryRun bool) (int64, error) {
	path = filepath.Clean(path)

	if err := checkNeverDelete(path); err != nil {
		return 0, err
	}

	info, err := os.Lstat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}

	var size int64
	if info.IsDir() {
		size = dirSize(path)
	} else {
		size = info.Size()
	}

	if dryRun {
		return size, nil
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return 0, err
	}
	return size, nil
}

// checkNeverDelete rejects paths that are, or contain, a protected system
// location. Ancestors count: removing /usr/local would take /usr/local/bin
// with it.
func checkNeverDelete(path string) error {
	for _, protected := range config.NeverDeletePaths() {
		if path == protected {
			return fmt.Errorf("refusing to delete protected path %s", path)
		}
		if strings.HasPrefix(protected, path+string(filepath.Separator)) {
			return fmt.Errorf("refusing to delete %s: contains protected path %s", path, protected)
		}
	}
	return nil
}

// dirSize sums the sizes of all regular files under dir. Errors during
// the walk are ignored; the result is a best-effort estimate.
func dirSize(dir string) int64 {
	var total int64
	_ = filepath.WalkDir(dir, func(_ string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}
