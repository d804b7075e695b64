package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guialves/fallow/internal/core"
	"github.com/guialves/fallow/internal/ui"
)

// Render produces the human-readable disk usage view.
func Render(report *Report, width int) string {
	if width < 50 {
		width = 50
	}
	barWidth := 24
	if width > 100 {
		barWidth = 32
	}

	var s strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Render("  " + ui.IconDiamond + " Disk Usage")
	s.WriteString(title)
	s.WriteString("\n\n")

	for _, p := range report.Partitions {
		s.WriteString(renderPartition(p, barWidth))
		s.WriteString("\n")
	}

	if report.Root != nil {
		s.WriteString("\n")
		s.WriteString(lipgloss.NewStyle().
			Foreground(ui.ColorTextDim).
			Render("  Scan root filesystem:"))
		s.WriteString("\n")
		s.WriteString(renderPartition(*report.Root, barWidth))
		s.WriteString("\n")
	}

	return s.String()
}

func renderPartition(p PartitionUsage, barWidth int) string {
	bar := ui.GradientBar(p.UsedPercent, barWidth)

	name := p.Mountpoint
	if p.Device != "" {
		name = fmt.Sprintf("%s (%s)", p.Mountpoint, p.Device)
	}
	nameStr := lipgloss.NewStyle().
		Foreground(ui.ColorText).
		Bold(true).
		Render(name)

	detail := lipgloss.NewStyle().
		Foreground(ui.ColorTextDim).
		Render(fmt.Sprintf("%s free of %s  (%.1f%% used)",
			core.FormatSize(int64(p.FreeBytes)),
			core.FormatSize(int64(p.TotalBytes)),
			p.UsedPercent))

	return fmt.Sprintf("  %s\n  %s  %s\n", nameStr, bar, detail)
}
