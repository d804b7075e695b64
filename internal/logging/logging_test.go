package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_NoFileHasNoCloser(t *testing.T) {
	logger, closer := New(Config{Level: "info", Format: "text"})
	if logger == nil {
		t.Fatal("nil logger")
	}
	if closer != nil {
		t.Error("closer should be nil without a log file")
	}
}

func TestNew_FileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fallow.log")
	logger, closer := New(Config{Level: "debug", Format: "json", FilePath: path})
	if closer == nil {
		t.Fatal("expected a closer when a log file is configured")
	}
	defer closer.Close()

	logger.Info("hello", slog.String("key", "value"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Errorf("log file missing entry: %q", data)
	}
}
