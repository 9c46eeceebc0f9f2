package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"github.com/ivlev/pptx2video/internal/archive"
	"github.com/ivlev/pptx2video/internal/config"
	"github.com/ivlev/pptx2video/internal/pptx"
	"github.com/ivlev/pptx2video/internal/pptx/pptxtest"
	"github.com/ivlev/pptx2video/internal/scenario"
	"github.com/ivlev/pptx2video/internal/source"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.ImageDir = filepath.Join(dir, "assets")
	cfg.ScriptPath = filepath.Join(dir, "assets", "script.json")
	cfg.ShowStats = true
	return cfg
}

func openDeck(t *testing.T, files map[string][]byte) source.Deck {
	t.Helper()
	arc, err := archive.Open(pptxtest.Zip(t, files))
	if err != nil {
		t.Fatalf("archive.Open failed: %v", err)
	}
	deck, err := source.NewPPTXDeck(arc)
	if err != nil {
		t.Fatalf("NewPPTXDeck failed: %v", err)
	}
	return deck
}

func TestProjectRun(t *testing.T) {
	cfg := testConfig(t)
	project := NewProject(cfg, openDeck(t, pptxtest.TwoSlideDeck()), zaptest.NewLogger(t).Sugar())

	res, err := project.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Two 5s slides at 30fps.
	if res.TotalFrames != 300 {
		t.Errorf("Expected 300 frames, got %d", res.TotalFrames)
	}
	if res.Plan.Length != 285 || len(res.Plan.Transitions) != 1 {
		t.Errorf("Expected one fade overlap, got length %d and %d transitions", res.Plan.Length, len(res.Plan.Transitions))
	}

	written, err := scenario.ReadFile(cfg.ScriptPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if diff := cmp.Diff(res.Document, written); diff != "" {
		t.Errorf("written document differs (-built +read):\n%s", diff)
	}

	if _, err := os.Stat(filepath.Join(cfg.ImageDir, "slide1.png")); err != nil {
		t.Errorf("Expected materialized media: %v", err)
	}
}

func TestProjectRunYAML(t *testing.T) {
	cfg := testConfig(t)
	cfg.ScriptPath = filepath.Join(filepath.Dir(cfg.ScriptPath), "script.yaml")
	cfg.Cinematic = false

	res, err := NewProject(cfg, openDeck(t, pptxtest.TwoSlideDeck()), nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Plan.Transitions) != 0 || res.Plan.Length != 300 {
		t.Errorf("Expected back-to-back scenes, got %+v", res.Plan)
	}

	written, err := scenario.ReadFile(cfg.ScriptPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(written.Scenes) != 2 || written.Cinematic {
		t.Errorf("Unexpected document %+v", written)
	}
}

func TestProjectRunWritesNothingOnFailure(t *testing.T) {
	cfg := testConfig(t)
	files := pptxtest.TwoSlideDeck()
	delete(files, "ppt/media/image1.png")

	_, err := NewProject(cfg, openDeck(t, files), zaptest.NewLogger(t).Sugar()).Run(context.Background())
	if !errors.Is(err, pptx.ErrMediaNotFound) {
		t.Fatalf("Expected ErrMediaNotFound, got %v", err)
	}
	if _, err := os.Stat(cfg.ScriptPath); !os.IsNotExist(err) {
		t.Errorf("Expected no document on disk, stat returned %v", err)
	}
}

func TestProjectRunRejectsBadConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.FPS = 0

	if _, err := NewProject(cfg, openDeck(t, pptxtest.TwoSlideDeck()), nil).Run(context.Background()); err == nil {
		t.Error("Expected an error for an invalid config")
	}
}
