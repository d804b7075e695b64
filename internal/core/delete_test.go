package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSafeDelete_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "junk.log")
	if err := os.WriteFile(path, make([]byte, 256), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	freed, err := SafeDelete(path, false)
	if err != nil {
		t.Fatalf("SafeDelete: %v", err)
	}
	if freed != 256 {
		t.Errorf("freed = %d, want 256", freed)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still exists after SafeDelete")
	}
}

func TestSafeDelete_DryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "junk.log")
	if err := os.WriteFile(path, make([]byte, 64), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	freed, err := SafeDelete(path, true)
	if err != nil {
		t.Fatalf("SafeDelete dry run: %v", err)
	}
	if freed != 64 {
		t.Errorf("freed = %d, want 64", freed)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("dry run removed the file: %v", err)
	}
}

func TestSafeDelete_Directory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "cache")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for i, name := range []string{"a.bin", "b.bin"} {
		if err := os.WriteFile(filepath.Join(sub, name), make([]byte, 100*(i+1)), 0o644); err != nil {
			t.Fatalf("writing file: %v", err)
		}
	}

	freed, err := SafeDelete(sub, false)
	if err != nil {
		t.Fatalf("SafeDelete: %v", err)
	}
	if freed != 300 {
		t.Errorf("freed = %d, want 300", freed)
	}
	if _, err := os.Stat(sub); !os.IsNotExist(err) {
		t.Errorf("directory still exists after SafeDelete")
	}
}

func TestSafeDelete_RefusesProtectedPaths(t *testing.T) {
	for _, path := range []string{"/", "/usr", "/etc"} {
		if _, err := SafeDelete(path, true); err == nil {
			t.Errorf("SafeDelete(%q) did not refuse", path)
		}
	}
}

func TestSafeDelete_MissingFile(t *testing.T) {
	if _, err := SafeDelete(filepath.Join(t.TempDir(), "gone.txt"), false); err == nil {
		t.Error("expected error for missing file")
	}
}
