package scan

import (
	"testing"
	"time"
)

func TestIsStale(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	maxAge := 180 * 24 * time.Hour

	tests := []struct {
		name       string
		lastAccess time.Time
		want       bool
	}{
		{"accessed yesterday", now.Add(-24 * time.Hour), false},
		{"exactly at threshold", now.Add(-maxAge), false},
		{"just past threshold", now.Add(-maxAge - time.Nanosecond), true},
		{"200 days old", now.Add(-200 * 24 * time.Hour), true},
		{"accessed in the future", now.Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStale(tt.lastAccess, now, maxAge); got != tt.want {
				t.Errorf("IsStale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtSetProtected(t *testing.T) {
	set := NewExtSet([]string{".app", ".framework", ".dylib"})

	tests := []struct {
		path string
		want bool
	}{
		{"/opt/Tool.app", true},
		{"/opt/Tool.APP", true},
		{"/opt/Tool.App", true},
		{"/lib/libfoo.dylib", true},
		{"/lib/Foo.framework", true},
		{"/home/u/notes.txt", false},
		{"/home/u/archive.tar.gz", false},
		{"/home/u/noextension", false},
		{"/home/u/app", false},
		{"/home/u/my.app.backup", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := set.Protected(tt.path); got != tt.want {
				t.Errorf("Protected(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewExtSetNormalizes(t *testing.T) {
	// Entries without a leading dot and with mixed case still match.
	set := NewExtSet([]string{"APP", " .Dylib ", ""})
	if !set.Protected("/x/a.app") {
		t.Error("bare extension 'APP' did not normalize to .app")
	}
	if !set.Protected("/x/b.DYLIB") {
		t.Error("padded extension '.Dylib' did not normalize")
	}
	if len(set) != 2 {
		t.Errorf("len(set) = %d, want 2 (empty entry dropped)", len(set))
	}
}
