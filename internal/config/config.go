package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/pptx2video/internal/system"
)

// RefStyle selects how materialized media is referenced from scenes.
const (
	RefName = "name" // bare file name, looked up by the renderer
	RefPath = "path" // imageDir joined with the file name
)

// Config holds the conversion options. Zero values never reach the
// pipeline: start from Default or Load.
type Config struct {
	FPS           float64 `yaml:"fps"`
	SlideDuration float64 `yaml:"slideDuration"` // seconds per slide
	OutputVideo   string  `yaml:"outputVideo"`
	Cinematic     bool    `yaml:"cinematic"`
	ImageDir      string  `yaml:"imageDir"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Workers       int     `yaml:"workers"`
	DPI           int     `yaml:"dpi"` // PDF rendering only
	RefStyle      string  `yaml:"refStyle"`
	ScriptPath    string  `yaml:"scriptPath"`
	ShowStats     bool    `yaml:"showStats"`
	BuildVersion  string  `yaml:"-"`
}

// Default returns the options used for package conversion.
func Default() *Config {
	return &Config{
		FPS:           30,
		SlideDuration: 5,
		OutputVideo:   "out/video.mp4",
		Cinematic:     true,
		ImageDir:      "assets",
		Width:         1920,
		Height:        1080,
		Workers:       system.DefaultWorkers(),
		DPI:           150,
		RefStyle:      RefName,
		ScriptPath:    "assets/script.json",
	}
}

// Load reads a YAML config file over the defaults. Keys missing from the
// file keep their default; unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every option and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if !(c.FPS > 0) {
		errs = append(errs, fmt.Errorf("fps must be positive, got %v", c.FPS))
	}
	if !(c.SlideDuration > 0) {
		errs = append(errs, fmt.Errorf("slideDuration must be positive, got %v", c.SlideDuration))
	}
	if c.OutputVideo == "" {
		errs = append(errs, errors.New("outputVideo must not be empty"))
	}
	if c.ImageDir == "" {
		errs = append(errs, errors.New("imageDir must not be empty"))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("resolution must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.DPI <= 0 {
		errs = append(errs, fmt.Errorf("dpi must be positive, got %d", c.DPI))
	}
	if c.RefStyle != RefName && c.RefStyle != RefPath {
		errs = append(errs, fmt.Errorf("refStyle must be %q or %q, got %q", RefName, RefPath, c.RefStyle))
	}
	if c.ScriptPath == "" {
		errs = append(errs, errors.New("scriptPath must not be empty"))
	}
	return errors.Join(errs...)
}
