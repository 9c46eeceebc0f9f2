package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGeneratePath(t *testing.T) {
	path := GeneratePath("assets")

	if filepath.Dir(path) != "assets" {
		t.Errorf("Path should be in assets: %s", path)
	}
	if !strings.HasPrefix(filepath.Base(path), "script_") || filepath.Ext(path) != ".json" {
		t.Errorf("Unexpected file name: %s", path)
	}

	t.Logf("Generated path: %s", path)
}

func TestFindLatest(t *testing.T) {
	testDir := t.TempDir()

	files := []string{
		filepath.Join(testDir, "script_2026-02-12_10-00-00.json"),
		filepath.Join(testDir, "script_2026-02-13_01-00-00.yml"),
		filepath.Join(testDir, "script_2026-02-11_15-30-00.yaml"),
	}

	for i, f := range files {
		if err := os.WriteFile(f, []byte("test"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", f, err)
		}
		modTime := time.Now().Add(time.Duration(i) * time.Hour)
		if err := os.Chtimes(f, modTime, modTime); err != nil {
			t.Fatalf("Failed to set mtime: %v", err)
		}
	}

	// Newer, but not a document.
	notes := filepath.Join(testDir, "notes.txt")
	if err := os.WriteFile(notes, []byte("test"), 0644); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(24 * time.Hour)
	os.Chtimes(notes, future, future)

	latest, err := FindLatest(testDir)
	if err != nil {
		t.Fatalf("FindLatest failed: %v", err)
	}

	t.Logf("Latest document: %s", latest)

	if latest != files[len(files)-1] {
		t.Errorf("Expected latest to be %s, got %s", files[len(files)-1], latest)
	}
}

func TestFindLatestEmpty(t *testing.T) {
	if _, err := FindLatest(t.TempDir()); err == nil {
		t.Error("Expected an error for a directory without documents")
	}
}
