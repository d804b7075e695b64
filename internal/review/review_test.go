package review

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guialves/fallow/internal/config"
	"github.com/guialves/fallow/internal/scan"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPrintStatic_Empty(t *testing.T) {
	var buf strings.Builder
	PrintStatic(&buf, &scan.Result{Root: "/data"})
	if got := buf.String(); got != "Nothing stale found.\n" {
		t.Errorf("output = %q", got)
	}
}

func TestPrintStatic_Listing(t *testing.T) {
	result := &scan.Result{
		Root: "/data",
		Deleted: []scan.FileRecord{
			{Path: "/data/a.txt", Size: 1024},
			{Path: "/data/b.bin", Size: 2048},
		},
		FreedBytes: 3072,
	}

	var buf strings.Builder
	PrintStatic(&buf, result)
	out := buf.String()

	for _, want := range []string{
		"Stale files under /data:",
		"/data/a.txt",
		"/data/b.bin",
		"1.00 KB",
		"2.00 KB",
		"2 file(s), 3.00 KB reclaimable",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func scanned(t *testing.T, m Model, recs ...scan.FileRecord) Model {
	t.Helper()
	result := &scan.Result{Deleted: recs}
	updated, _ := m.Update(scanDoneMsg{result: result})
	got, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	if got.phase != phasePicking {
		t.Fatalf("phase = %d after scan, want picking", got.phase)
	}
	return got
}

func key(m Model, s string) Model {
	var msg tea.KeyMsg
	switch s {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestModel_ScanPopulatesSelectedItems(t *testing.T) {
	m := NewModel(config.ScanConfig{Root: "/tmp"}, testLogger(), nil)
	m = scanned(t, m,
		scan.FileRecord{Path: "/tmp/a", Size: 10},
		scan.FileRecord{Path: "/tmp/b", Size: 20},
	)

	if len(m.items) != 2 {
		t.Fatalf("items = %d, want 2", len(m.items))
	}
	if m.selectedCount() != 2 {
		t.Errorf("selectedCount = %d, all candidates should start selected", m.selectedCount())
	}
	if m.selectedBytes() != 30 {
		t.Errorf("selectedBytes = %d, want 30", m.selectedBytes())
	}
}

func TestModel_SpaceTogglesSelection(t *testing.T) {
	m := NewModel(config.ScanConfig{}, testLogger(), nil)
	m = scanned(t, m, scan.FileRecord{Path: "/tmp/a", Size: 10})

	m = key(m, " ")
	if m.selectedCount() != 0 {
		t.Errorf("selectedCount = %d after toggle off, want 0", m.selectedCount())
	}
	m = key(m, " ")
	if m.selectedCount() != 1 {
		t.Errorf("selectedCount = %d after toggle on, want 1", m.selectedCount())
	}
}

func TestModel_ToggleAll(t *testing.T) {
	m := NewModel(config.ScanConfig{}, testLogger(), nil)
	m = scanned(t, m,
		scan.FileRecord{Path: "/tmp/a"},
		scan.FileRecord{Path: "/tmp/b"},
	)

	m = key(m, "a")
	if m.selectedCount() != 0 {
		t.Errorf("selectedCount = %d, 'a' should deselect everything", m.selectedCount())
	}
	m = key(m, "a")
	if m.selectedCount() != 2 {
		t.Errorf("selectedCount = %d, 'a' should reselect everything", m.selectedCount())
	}
}

func TestModel_CursorMovement(t *testing.T) {
	m := NewModel(config.ScanConfig{}, testLogger(), nil)
	m = scanned(t, m,
		scan.FileRecord{Path: "/tmp/a"},
		scan.FileRecord{Path: "/tmp/b"},
	)

	m = key(m, "j")
	if m.cursor != 1 {
		t.Errorf("cursor = %d after j, want 1", m.cursor)
	}
	m = key(m, "j")
	if m.cursor != 1 {
		t.Errorf("cursor = %d, must not move past last item", m.cursor)
	}
	m = key(m, "k")
	if m.cursor != 0 {
		t.Errorf("cursor = %d after k, want 0", m.cursor)
	}
}

func TestModel_EnterRequiresConfirmation(t *testing.T) {
	m := NewModel(config.ScanConfig{}, testLogger(), nil)
	m = scanned(t, m, scan.FileRecord{Path: "/tmp/a"})

	m = key(m, "enter")
	if m.phase != phaseConfirm {
		t.Fatalf("phase = %d after enter, want confirm", m.phase)
	}

	// Any key other than Enter backs out.
	m = key(m, "x")
	if m.phase != phasePicking {
		t.Errorf("phase = %d after backing out, want picking", m.phase)
	}
}

func TestModel_EnterWithNothingSelectedStaysPicking(t *testing.T) {
	m := NewModel(config.ScanConfig{}, testLogger(), nil)
	m = scanned(t, m, scan.FileRecord{Path: "/tmp/a"})

	m = key(m, " ") // deselect the only item
	m = key(m, "enter")
	if m.phase != phasePicking {
		t.Errorf("phase = %d, enter with empty selection must not confirm", m.phase)
	}
}

func TestModel_ScanErrorGoesToDone(t *testing.T) {
	m := NewModel(config.ScanConfig{}, testLogger(), nil)
	updated, _ := m.Update(scanDoneMsg{err: io.ErrUnexpectedEOF})
	got := updated.(Model)
	if got.phase != phaseDone {
		t.Errorf("phase = %d after scan error, want done", got.phase)
	}
	if got.err == nil {
		t.Error("scan error not retained")
	}
}

func TestModel_DeleteResultsAccumulate(t *testing.T) {
	m := NewModel(config.ScanConfig{}, testLogger(), nil)
	m = scanned(t, m,
		scan.FileRecord{Path: "/tmp/a", Size: 10},
		scan.FileRecord{Path: "/tmp/b", Size: 20},
	)
	m.phase = phaseDeleting

	updated, cmd := m.Update(deleteResultMsg{index: 0, freed: 10})
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected a follow-up delete command for the second item")
	}

	updated, _ = m.Update(deleteResultMsg{index: 1, err: io.ErrClosedPipe})
	m = updated.(Model)

	if m.Deleted() != 1 || m.Failed() != 1 || m.Freed() != 10 {
		t.Errorf("deleted=%d failed=%d freed=%d, want 1/1/10", m.Deleted(), m.Failed(), m.Freed())
	}
	if m.phase != phaseDone {
		t.Errorf("phase = %d after last result, want done", m.phase)
	}
}
