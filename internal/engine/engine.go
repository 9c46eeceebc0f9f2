package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ivlev/pptx2video/internal/config"
	"github.com/ivlev/pptx2video/internal/director"
	"github.com/ivlev/pptx2video/internal/logging"
	"github.com/ivlev/pptx2video/internal/scenario"
	"github.com/ivlev/pptx2video/internal/source"
	"github.com/ivlev/pptx2video/internal/timeline"
)

// Project converts one deck into a timeline document on disk.
type Project struct {
	Config *config.Config
	Deck   source.Deck
	log    *zap.SugaredLogger
}

// Result is what a finished conversion produced.
type Result struct {
	Document    *scenario.Document
	ScriptPath  string
	Plan        *timeline.Plan
	TotalFrames int
	Elapsed     time.Duration
}

func NewProject(cfg *config.Config, deck source.Deck, log *zap.SugaredLogger) *Project {
	return &Project{
		Config: cfg,
		Deck:   deck,
		log:    logging.OrNop(log),
	}
}

// Run builds the document, writes it to Config.ScriptPath and lays out its
// timeline. Nothing is written unless the whole document is valid.
func (p *Project) Run(ctx context.Context) (*Result, error) {
	if err := p.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	startTime := time.Now()

	p.log.Infow("Converting deck",
		"slides", p.Deck.SlideCount(),
		"resolution", fmt.Sprintf("%dx%d", p.Config.Width, p.Config.Height),
		"fps", p.Config.FPS,
		"imageDir", p.Config.ImageDir,
	)

	doc, err := director.NewDirector(p.Config, p.log).Build(ctx, p.Deck)
	if err != nil {
		return nil, fmt.Errorf("build document: %w", err)
	}
	buildTime := time.Since(startTime)

	writeStart := time.Now()
	if err := scenario.WriteFile(doc, p.Config.ScriptPath); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}
	writeTime := time.Since(writeStart)

	plan := timeline.Schedule(doc)
	res := &Result{
		Document:    doc,
		ScriptPath:  p.Config.ScriptPath,
		Plan:        plan,
		TotalFrames: plan.TotalFrames,
		Elapsed:     time.Since(startTime),
	}

	p.log.Infow("Document written",
		"path", res.ScriptPath,
		"scenes", len(doc.Scenes),
		"totalFrames", res.TotalFrames,
		"seconds", doc.TotalSeconds(),
	)

	if p.Config.ShowStats {
		p.log.Infow("Performance report",
			"build", p.Config.BuildVersion,
			"total", res.Elapsed.Round(time.Millisecond),
			"scenes", buildTime.Round(time.Millisecond),
			"write", writeTime.Round(time.Millisecond),
			"slidesPerSecond", fmt.Sprintf("%.2f", float64(len(doc.Scenes))/res.Elapsed.Seconds()),
			"renderedFrames", plan.Length,
			"transitions", len(plan.Transitions),
		)
	}

	return res, nil
}
