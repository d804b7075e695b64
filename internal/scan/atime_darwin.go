package scan

import (
	"os"
	"syscall"
	"time"
)

// AccessTime extracts the last-access timestamp from a FileInfo.
func AccessTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Atimespec.Unix())
	}
	return info.ModTime()
}
