package core

import (
	"fmt"
	"strconv"
	"strings"
)

// sizeSuffixes are the unit labels used by FormatSize, smallest first.
var sizeSuffixes = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatSize renders a byte count as a human-readable string with two
// decimal places, e.g. "1.00 MB". Zero formats as the literal "0B".
//
// The unit is picked from the decimal digit count of the value
// ((digits-1)/3) rather than a true base-1024 logarithm, so values near
// unit boundaries can land one bracket off (999 vs 1000 bytes). This
// matches the historical report format and is kept for compatibility.
func FormatSize(bytes int64) string {
	if bytes == 0 {
		return "0B"
	}
	neg := ""
	if bytes < 0 {
		neg = "-"
		bytes = -bytes
	}
	idx := (len(strconv.FormatInt(bytes, 10)) - 1) / 3
	if idx >= len(sizeSuffixes) {
		idx = len(sizeSuffixes) - 1
	}
	value := float64(bytes) / float64(uint64(1)<<(10*idx))
	return fmt.Sprintf("%s%.2f %s", neg, value, sizeSuffixes[idx])
}

// ParseSize converts a human size string like "500", "10KB", "1.5GB" into
// bytes. Units are base-1024 and case-insensitive; a bare number is bytes.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	upper := strings.ToUpper(s)
	mult := int64(1)
	num := upper
	for i := len(sizeSuffixes) - 1; i >= 1; i-- {
		if strings.HasSuffix(upper, sizeSuffixes[i]) {
			mult = 1 << (10 * uint(i))
			num = strings.TrimSpace(strings.TrimSuffix(upper, sizeSuffixes[i]))
			break
		}
	}
	if num == upper {
		num = strings.TrimSpace(strings.TrimSuffix(upper, "B"))
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	if value < 0 {
		return 0, fmt.Errorf("negative size %q", s)
	}
	return int64(value * float64(mult)), nil
}
