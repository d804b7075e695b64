// Package ui holds the shared visual vocabulary for all TUI surfaces:
// color tokens, icons, and small reusable style helpers.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ─── Color tokens ────────────────────────────────────────────────────────────

var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	ColorCoral     = lipgloss.AdaptiveColor{Light: "#ea580c", Dark: "#fb923c"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError     = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorText      = lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"}
	ColorTextDim   = lipgloss.AdaptiveColor{Light: "#4b5563", Dark: "#9ca3af"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconDiamond = "◆"
	IconBullet  = "·"
	IconFolder  = "▸ "
	IconCheck   = "✓"
	IconWarning = "!"
	IconError   = "✗"
	IconChevron = "›"
	IconPipe    = "│"
	IconBlock   = "▌"
)

// ─── Style helpers ───────────────────────────────────────────────────────────

// HintBarStyle styles the keybinding hint bar at the bottom of a view.
func HintBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// TagWarningStyle styles short inline warning tags like " stale ".
func TagWarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#1f2937"}).
		Background(ColorWarning).
		Bold(true)
}

// GradientBar renders a horizontal usage bar of the given width, filled
// proportionally to pct (0–100). The fill color shifts from green through
// yellow to red as the percentage grows.
func GradientBar(pct float64, width int) string {
	if width < 1 {
		width = 1
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}

	color := ColorSuccess
	switch {
	case pct >= 90:
		color = ColorError
	case pct >= 70:
		color = ColorWarning
	}

	bar := lipgloss.NewStyle().Foreground(color).
		Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(ColorMuted).
		Render(strings.Repeat("░", width-filled))
	return bar + rest
}
