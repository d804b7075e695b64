package review

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guialves/fallow/internal/core"
	"github.com/guialves/fallow/internal/ui"
)

// ─── Top-level view ──────────────────────────────────────────────────────────

func (m Model) renderView() string {
	if m.quitting {
		return ""
	}
	w := m.width
	if w < 40 {
		w = 40
	}

	switch m.phase {
	case phaseScanning:
		return m.renderScanning()
	case phaseDeleting:
		return m.renderDeleting(w)
	case phaseDone:
		return m.renderDone(w)
	default:
		return m.renderPicking(w)
	}
}

// ─── Scanning ────────────────────────────────────────────────────────────────

func (m Model) renderScanning() string {
	label := lipgloss.NewStyle().
		Foreground(ui.ColorTextDim).
		Render(fmt.Sprintf("Scanning %s for stale files…", m.cfg.Root))
	return "\n  " + m.spinner.View() + " " + label + "\n"
}

// ─── Picking ─────────────────────────────────────────────────────────────────

func (m Model) renderPicking(w int) string {
	var s strings.Builder
	s.WriteString(m.renderHeader(w))
	s.WriteString("\n")

	if len(m.items) == 0 {
		s.WriteString(lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Render("  Nothing stale found. The tree is clean."))
		s.WriteString("\n")
		s.WriteString(ui.HintBarStyle().Render("  q quit"))
		return s.String()
	}

	vh := m.viewportHeight()
	for i := m.offset; i < len(m.items) && i < m.offset+vh; i++ {
		s.WriteString(m.renderItem(i))
		s.WriteString("\n")
	}

	if len(m.items) > vh {
		s.WriteString(lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Render(fmt.Sprintf("  ── %d/%d files ──",
				min(m.offset+vh, len(m.items)), len(m.items))))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m Model) renderHeader(w int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorCoral).
		Render("  " + ui.IconDiamond + " Stale File Review")

	line := fmt.Sprintf("  %s    %d candidates    %d selected    %s reclaimable",
		m.cfg.Root, len(m.items), m.selectedCount(),
		core.FormatSize(m.selectedBytes()))
	summary := lipgloss.NewStyle().
		Foreground(ui.ColorTextDim).
		Render(line)

	inner := lipgloss.JoinVertical(lipgloss.Left, title, summary)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorCoral).
		Width(w - 2).
		Render(inner)
}

func (m Model) renderItem(i int) string {
	it := m.items[i]

	check := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("[ ]")
	if it.selected {
		check = lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render("[" + ui.IconCheck + "]")
	}

	maxPath := m.width - 32
	if maxPath < 20 {
		maxPath = 20
	}
	path := it.rec.Path
	if len(path) > maxPath {
		path = "…" + path[len(path)-maxPath+1:]
	}
	pathColor := ui.ColorText
	if !it.selected {
		pathColor = ui.ColorMuted
	}
	pathStr := lipgloss.NewStyle().Foreground(pathColor).Render(path)

	size := lipgloss.NewStyle().Foreground(ui.ColorTextDim).
		Render(fmt.Sprintf("%10s", core.FormatSize(it.rec.Size)))
	age := lipgloss.NewStyle().Foreground(ui.ColorMuted).
		Render(fmt.Sprintf("%4dd", m.ageDays(it.rec)))

	line := fmt.Sprintf("  %s %s  %s  %s", check, size, age, pathStr)

	if i == m.cursor {
		cursor := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Render(ui.IconBlock)
		line = " " + cursor + line[2:]
		if m.phase == phaseConfirm {
			line += lipgloss.NewStyle().
				Foreground(ui.ColorError).
				Bold(true).
				Render("  " + ui.IconWarning + " Enter deletes, any other key cancels")
		}
	}

	return line
}

func (m Model) renderFooter() string {
	var parts []string

	if m.phase == phaseConfirm {
		warn := lipgloss.NewStyle().
			Foreground(ui.ColorError).
			Bold(true).
			Render(fmt.Sprintf("  %s Delete %d file(s), freeing %s? Press Enter to confirm.",
				ui.IconWarning, m.selectedCount(), core.FormatSize(m.selectedBytes())))
		parts = append(parts, warn)
	}

	if n := len(m.warnings); n > 0 {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Render(fmt.Sprintf("  %d path(s) could not be read during the scan", n)))
	}

	hints := []string{
		"↑↓ nav",
		"space toggle",
		"a all",
		"Enter delete",
		"q quit",
	}
	parts = append(parts, ui.HintBarStyle().Render("  "+strings.Join(hints, " "+ui.IconPipe+" ")))

	return strings.Join(parts, "\n")
}

// ─── Deleting ────────────────────────────────────────────────────────────────

func (m Model) renderDeleting(w int) string {
	total := m.selectedCount()
	done := m.processedCount()

	var pct float64
	if total > 0 {
		pct = float64(done) / float64(total)
	}

	barWidth := w - 10
	if barWidth > 60 {
		barWidth = 60
	}
	m.progress.Width = barWidth

	label := lipgloss.NewStyle().
		Foreground(ui.ColorTextDim).
		Render(fmt.Sprintf("Deleting… %d/%d  %s freed", done, total, core.FormatSize(m.freed)))

	return "\n  " + label + "\n\n  " + m.progress.ViewAs(pct) + "\n"
}

// ─── Done ────────────────────────────────────────────────────────────────────

func (m Model) renderDone(w int) string {
	if m.err != nil {
		msg := lipgloss.NewStyle().
			Foreground(ui.ColorError).
			Render("  " + ui.IconError + " " + m.err.Error())
		return "\n" + msg + "\n\n" + ui.HintBarStyle().Render("  any key to exit") + "\n"
	}

	lines := []string{
		fmt.Sprintf("  Deleted    %d file(s)", m.deleted),
		fmt.Sprintf("  Freed      %s", core.FormatSize(m.freed)),
	}
	if m.failed > 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(ui.ColorWarning).
			Render(fmt.Sprintf("  Failed     %d file(s), see log for details", m.failed)))
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorSuccess).
		Render("  " + ui.IconCheck + " Cleanup complete")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorSuccess).
		Width(w - 2).
		Render(title + "\n" + strings.Join(lines, "\n"))

	return "\n" + card + "\n\n" + ui.HintBarStyle().Render("  any key to exit") + "\n"
}
