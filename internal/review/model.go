package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/guialves/fallow/internal/config"
	"github.com/guialves/fallow/internal/core"
	"github.com/guialves/fallow/internal/scan"
)

// phase tracks which screen the review session is on.
type phase int

const (
	phaseScanning phase = iota
	phasePicking
	phaseConfirm
	phaseDeleting
	phaseDone
)

// item is one stale-file candidate and its selection/deletion state.
type item struct {
	rec      scan.FileRecord
	selected bool
	deleted  bool
	err      error
}

// ─── Messages ────────────────────────────────────────────────────────────────

type scanDoneMsg struct {
	result *scan.Result
	err    error
}

type deleteResultMsg struct {
	index int
	freed int64
	err   error
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea Model for the interactive candidate review.
// It scans first (dry run), lets the user pick which candidates go, then
// deletes the selection one file at a time.
type Model struct {
	cfg      config.ScanConfig
	logger   *slog.Logger
	reporter scan.Reporter

	phase    phase
	spinner  spinner.Model
	progress progress.Model

	items    []item
	cursor   int
	offset   int
	width    int
	height   int
	scanTime time.Time
	warnings []string

	freed    int64
	deleted  int
	failed   int
	quitting bool
	err      error
}

// NewModel creates a review session over the given scan configuration.
// reporter may be nil; when set, each successful deletion is recorded.
func NewModel(cfg config.ScanConfig, logger *slog.Logger, reporter scan.Reporter) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		cfg:      cfg,
		logger:   logger,
		reporter: reporter,
		spinner:  sp,
		progress: progress.New(progress.WithDefaultGradient()),
		width:    80,
		height:   24,
	}
}

// Freed returns the total bytes freed during the session.
func (m Model) Freed() int64 { return m.freed }

// Deleted returns the number of files removed during the session.
func (m Model) Deleted() int { return m.deleted }

// Failed returns the number of deletions that failed.
func (m Model) Failed() int { return m.failed }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.scanCmd())
}

// scanCmd runs the candidate discovery pass (dry run, nothing deleted).
func (m Model) scanCmd() tea.Cmd {
	cfg := m.cfg
	logger := m.logger
	return func() tea.Msg {
		purger := scan.NewPurger(cfg, logger, true)
		result, err := purger.Run(context.Background())
		return scanDoneMsg{result: result, err: err}
	}
}

func (m Model) deleteCmd(index int) tea.Cmd {
	path := m.items[index].rec.Path
	return func() tea.Msg {
		freed, err := core.SafeDelete(path, false)
		return deleteResultMsg{index: index, freed: freed, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseScanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case scanDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.phase = phaseDone
			return m, nil
		}
		m.scanTime = time.Now()
		m.warnings = msg.result.Warnings
		m.items = make([]item, len(msg.result.Deleted))
		for i, rec := range msg.result.Deleted {
			m.items[i] = item{rec: rec, selected: true}
		}
		m.phase = phasePicking
		return m, nil

	case deleteResultMsg:
		it := &m.items[msg.index]
		if msg.err != nil {
			it.err = msg.err
			m.failed++
			m.logger.Warn("delete failed",
				slog.String("path", it.rec.Path),
				slog.Any("error", msg.err))
		} else {
			it.deleted = true
			m.deleted++
			m.freed += msg.freed
			if m.reporter != nil {
				if err := m.reporter.Record(it.rec); err != nil {
					m.logger.Warn("report write failed", slog.Any("error", err))
				}
			}
		}
		if next := m.nextSelected(msg.index + 1); next >= 0 {
			return m, m.deleteCmd(next)
		}
		m.phase = phaseDone
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Ctrl+C quits from anywhere except mid-deletion.
	if key == "ctrl+c" && m.phase != phaseDeleting {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {

	case phasePicking:
		switch key {
		case "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.ensureVisible()
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
				m.ensureVisible()
			}
		case " ":
			if m.cursor >= 0 && m.cursor < len(m.items) {
				m.items[m.cursor].selected = !m.items[m.cursor].selected
			}
		case "a":
			all := m.selectedCount() == len(m.items)
			for i := range m.items {
				m.items[i].selected = !all
			}
		case "enter":
			if m.selectedCount() > 0 {
				m.phase = phaseConfirm
			}
		}
		return m, nil

	case phaseConfirm:
		// Two-key confirmation: Enter proceeds, anything else backs out.
		if key == "enter" {
			m.phase = phaseDeleting
			if first := m.nextSelected(0); first >= 0 {
				return m, m.deleteCmd(first)
			}
			m.phase = phaseDone
			return m, nil
		}
		m.phase = phasePicking
		return m, nil

	case phaseDone:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View delegates to view.go renderView.
func (m Model) View() string {
	return m.renderView()
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func (m *Model) ensureVisible() {
	vh := m.viewportHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

func (m Model) viewportHeight() int {
	h := m.height - 9 // header + footer + padding
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) selectedCount() int {
	n := 0
	for _, it := range m.items {
		if it.selected {
			n++
		}
	}
	return n
}

func (m Model) selectedBytes() int64 {
	var total int64
	for _, it := range m.items {
		if it.selected {
			total += it.rec.Size
		}
	}
	return total
}

// nextSelected returns the index of the first selected, not-yet-processed
// item at or after from, or -1.
func (m Model) nextSelected(from int) int {
	for i := from; i < len(m.items); i++ {
		if m.items[i].selected && !m.items[i].deleted && m.items[i].err == nil {
			return i
		}
	}
	return -1
}

// processedCount returns how many selected items have been attempted.
func (m Model) processedCount() int {
	n := 0
	for _, it := range m.items {
		if it.selected && (it.deleted || it.err != nil) {
			n++
		}
	}
	return n
}

// ageDays returns the whole days since the record was last accessed.
func (m Model) ageDays(rec scan.FileRecord) int {
	ref := m.scanTime
	if ref.IsZero() {
		ref = time.Now()
	}
	return int(ref.Sub(rec.AccessTime).Hours() / 24)
}
