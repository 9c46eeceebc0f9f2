package director

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/pptx2video/internal/archive"
	"github.com/ivlev/pptx2video/internal/config"
	"github.com/ivlev/pptx2video/internal/logging"
	"github.com/ivlev/pptx2video/internal/scenario"
	"github.com/ivlev/pptx2video/internal/source"
)

// Defaults are the values the director puts on every generated scene.
type Defaults struct {
	KenBurns   scenario.KenBurns  // image scenes, cinematic only
	Animation  scenario.Animation // text scenes, cinematic only
	Overlay    scenario.Overlay   // caption template; Text is filled per slide
	FontSize   float64
	TextColor  string
	Background string
}

// Director turns slide decks into timeline documents
type Director struct {
	Config   *config.Config
	Defaults Defaults
	log      *zap.SugaredLogger
}

// NewDirector creates a new Director with the cinematic defaults
func NewDirector(cfg *config.Config, log *zap.SugaredLogger) *Director {
	return &Director{
		Config: cfg,
		Defaults: Defaults{
			KenBurns:  scenario.DefaultKenBurns(),
			Animation: scenario.DefaultAnimation(),
			Overlay: scenario.Overlay{
				Color: scenario.DefaultOverlayColor,
				Top:   "85%",
				Left:  "5%",
			},
			FontSize:   scenario.DefaultFontSize,
			TextColor:  scenario.DefaultTextColor,
			Background: "#0f0f1a",
		},
		log: logging.OrNop(log),
	}
}

// BuildArchive builds a document from an opened .pptx package.
func (d *Director) BuildArchive(ctx context.Context, arc *archive.Archive) (*scenario.Document, error) {
	deck, err := source.NewPPTXDeck(arc)
	if err != nil {
		return nil, err
	}
	return d.Build(ctx, deck)
}

// Build creates one scene per slide and validates the result. Slides are
// processed concurrently; scene order follows slide order. Any error
// aborts the whole build.
func (d *Director) Build(ctx context.Context, deck source.Deck) (*scenario.Document, error) {
	count := deck.SlideCount()
	workers := max(d.Config.Workers, 1)

	d.log.Infow("Building document",
		"slides", count,
		"workers", workers,
		"cinematic", d.Config.Cinematic,
	)

	scenes := make([]scenario.RawScene, count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scene, err := d.buildScene(deck, i)
			if err != nil {
				return fmt.Errorf("slide %d: %w", i+1, err)
			}
			scenes[i] = scene
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return scenario.Validate(scenario.RawDocument{
		FPS:       scenario.Ptr(d.Config.FPS),
		Width:     scenario.Ptr(float64(d.Config.Width)),
		Height:    scenario.Ptr(float64(d.Config.Height)),
		Output:    scenario.Ptr(d.Config.OutputVideo),
		Cinematic: scenario.Ptr(d.Config.Cinematic),
		Scenes:    scenes,
	})
}

func (d *Director) buildScene(deck source.Deck, index int) (scenario.RawScene, error) {
	label := fmt.Sprintf("slide%d", index+1)

	slide, err := deck.Slide(index)
	if err != nil {
		return scenario.RawScene{}, err
	}

	title := strings.Join(slide.Texts, " ")
	if title == "" {
		title = fmt.Sprintf("Slide %d", index+1)
	}

	transition := scenario.TransitionNone
	if d.Config.Cinematic {
		transition = scenario.TransitionFade
	}

	rs := scenario.RawScene{
		Duration:   scenario.Ptr(d.Config.SlideDuration),
		Transition: scenario.Ptr(string(transition)),
	}

	if !slide.HasImage() {
		rs.Type = string(scenario.SceneText)
		rs.Text = scenario.Ptr(title)
		rs.FontSize = scenario.Ptr(d.Defaults.FontSize)
		rs.Color = scenario.Ptr(d.Defaults.TextColor)
		rs.Background = scenario.Ptr(d.Defaults.Background)
		if d.Config.Cinematic {
			rs.Animation = rawAnimation(d.Defaults.Animation)
		}
		d.log.Debugw("Text scene", "scene", label, "text", title)
		return rs, nil
	}

	filename, err := deck.Materialize(index, slide.ImageRef, d.Config.ImageDir, label)
	if err != nil {
		return scenario.RawScene{}, err
	}
	d.logMedia(label, filepath.Join(d.Config.ImageDir, filename))

	rs.Type = string(scenario.SceneImage)
	rs.Src = scenario.Ptr(d.reference(filename))
	if title != "" {
		rs.Overlays = []scenario.RawOverlay{rawOverlay(d.Defaults.Overlay, title)}
	}
	if d.Config.Cinematic {
		rs.KenBurns = rawKenBurns(d.Defaults.KenBurns)
	}
	return rs, nil
}

// reference is how a scene names a materialized file.
func (d *Director) reference(filename string) string {
	if d.Config.RefStyle == config.RefPath {
		return filepath.ToSlash(filepath.Join(d.Config.ImageDir, filename))
	}
	return filename
}

func (d *Director) logMedia(label, path string) {
	info, err := source.ProbeImage(path)
	if err != nil {
		d.log.Debugw("Media written", "scene", label, "path", path, "probe", err)
		return
	}
	d.log.Debugw("Media written",
		"scene", label,
		"path", path,
		"format", info.Format,
		"size", fmt.Sprintf("%dx%d", info.Width, info.Height),
	)
}

func rawOverlay(tmpl scenario.Overlay, text string) scenario.RawOverlay {
	o := scenario.RawOverlay{
		Text:  scenario.Ptr(text),
		Color: scenario.Ptr(tmpl.Color),
		Top:   scenario.Ptr(tmpl.Top),
		Left:  scenario.Ptr(tmpl.Left),
	}
	if tmpl.FontSize != nil {
		o.FontSize = scenario.Ptr(*tmpl.FontSize)
	}
	return o
}

func rawKenBurns(kb scenario.KenBurns) *scenario.RawKenBurns {
	return &scenario.RawKenBurns{
		ZoomFrom: scenario.Ptr(kb.ZoomFrom),
		ZoomTo:   scenario.Ptr(kb.ZoomTo),
		PanXFrom: scenario.Ptr(kb.PanXFrom),
		PanXTo:   scenario.Ptr(kb.PanXTo),
		PanYFrom: scenario.Ptr(kb.PanYFrom),
		PanYTo:   scenario.Ptr(kb.PanYTo),
	}
}

func rawAnimation(a scenario.Animation) *scenario.RawAnimation {
	return &scenario.RawAnimation{
		Entrance:       scenario.Ptr(string(a.Entrance)),
		DurationFrames: scenario.Ptr(float64(a.DurationFrames)),
	}
}
