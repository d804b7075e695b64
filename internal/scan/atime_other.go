//go:build !linux && !darwin && !windows

package scan

import (
	"os"
	"time"
)

// AccessTime extracts the last-access timestamp from a FileInfo. On
// platforms without a known stat layout the modification time is the
// best available approximation.
func AccessTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
