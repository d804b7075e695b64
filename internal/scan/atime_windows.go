package scan

import (
	"os"
	"syscall"
	"time"
)

// AccessTime extracts the last-access timestamp from a FileInfo.
// Note that NTFS updates the on-disk access time lazily (and Windows
// disables it entirely on some editions), so this can trail reality.
func AccessTime(info os.FileInfo) time.Time {
	if d, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, d.LastAccessTime.Nanoseconds())
	}
	return info.ModTime()
}
