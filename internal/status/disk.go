package status

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// PartitionUsage is the disk usage snapshot for one mounted filesystem.
type PartitionUsage struct {
	Device      string  `json:"device"`
	Mountpoint  string  `json:"mountpoint"`
	Fstype      string  `json:"fstype"`
	TotalBytes  uint64  `json:"total_bytes"`
	FreeBytes   uint64  `json:"free_bytes"`
	UsedBytes   uint64  `json:"used_bytes"`
	UsedPercent float64 `json:"used_percent"`
}

// Report holds disk usage for all physical partitions plus, when a scan
// root is configured, the filesystem that root lives on.
type Report struct {
	Partitions []PartitionUsage `json:"partitions"`
	Root       *PartitionUsage  `json:"root,omitempty"`
}

// Collect gathers disk usage for all physical partitions. If root is
// non-empty its filesystem usage is reported separately. Partitions that
// cannot be statted (unmounted media, permission) are skipped.
func Collect(root string) (*Report, error) {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil, fmt.Errorf("listing partitions: %w", err)
	}

	report := &Report{}
	for _, p := range parts {
		usage, err := disk.Usage(p.Mountpoint)
		if err != nil {
			continue
		}
		report.Partitions = append(report.Partitions, PartitionUsage{
			Device:      p.Device,
			Mountpoint:  p.Mountpoint,
			Fstype:      p.Fstype,
			TotalBytes:  usage.Total,
			FreeBytes:   usage.Free,
			UsedBytes:   usage.Used,
			UsedPercent: usage.UsedPercent,
		})
	}

	if root != "" {
		if usage, err := disk.Usage(root); err == nil {
			report.Root = &PartitionUsage{
				Mountpoint:  root,
				Fstype:      usage.Fstype,
				TotalBytes:  usage.Total,
				FreeBytes:   usage.Free,
				UsedBytes:   usage.Used,
				UsedPercent: usage.UsedPercent,
			}
		}
	}

	return report, nil
}
