package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.FPS != 30 || cfg.SlideDuration != 5 {
		t.Errorf("unexpected timing defaults: fps %v, slideDuration %v", cfg.FPS, cfg.SlideDuration)
	}
	if cfg.OutputVideo != "out/video.mp4" || cfg.ImageDir != "assets" {
		t.Errorf("unexpected path defaults: %q, %q", cfg.OutputVideo, cfg.ImageDir)
	}
	if !cfg.Cinematic {
		t.Error("package conversion should default to cinematic")
	}
	if cfg.Workers < 1 {
		t.Errorf("expected at least one worker, got %d", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "fps: 24\ncinematic: false\nimageDir: public\nrefStyle: path\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FPS != 24 || cfg.Cinematic || cfg.ImageDir != "public" || cfg.RefStyle != RefPath {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.SlideDuration != 5 || cfg.OutputVideo != "out/video.mp4" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FPS != 30 {
		t.Errorf("expected default fps, got %v", cfg.FPS)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "fsp: 30\n", "fsp"},
		{"negative fps", "fps: -1\n", "fps must be positive"},
		{"zero duration", "slideDuration: 0\n", "slideDuration must be positive"},
		{"bad ref style", "refStyle: url\n", "refStyle"},
		{"wrong type", "width: wide\n", "wide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestValidateReportsEverything(t *testing.T) {
	cfg := Default()
	cfg.FPS = 0
	cfg.DPI = 0
	cfg.ScriptPath = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"fps", "dpi", "scriptPath"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}
