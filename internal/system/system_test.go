package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFindLatestDeck(t *testing.T) {
	dir := t.TempDir()

	files := []struct {
		name string
		age  time.Duration
	}{
		{"old.pptx", 3 * time.Hour},
		{"newest.PDF", 1 * time.Hour},
		{"middle.pptx", 2 * time.Hour},
		{"notes.txt", 0},
	}

	now := time.Now()
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte("deck"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", f.name, err)
		}
		modTime := now.Add(-f.age)
		if err := os.Chtimes(path, modTime, modTime); err != nil {
			t.Fatalf("Failed to set mtime on %s: %v", f.name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "folder.pptx"), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	latest, err := FindLatestDeck(dir)
	if err != nil {
		t.Fatalf("FindLatestDeck failed: %v", err)
	}

	expected := filepath.Join(dir, "newest.PDF")
	if latest != expected {
		t.Errorf("Expected %s, got %s", expected, latest)
	}
}

func TestFindLatestDeckEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("#"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := FindLatestDeck(dir); err == nil {
		t.Error("Expected error for a directory without decks")
	}
	if _, err := FindLatestDeck(filepath.Join(dir, "missing")); err == nil {
		t.Error("Expected error for a missing directory")
	}
}

func TestDefaultWorkers(t *testing.T) {
	if n := DefaultWorkers(); n < 1 {
		t.Errorf("Expected at least one worker, got %d", n)
	}
}
