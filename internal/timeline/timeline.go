// Package timeline derives frame counts, animation curves and the
// transition schedule from a validated document. Nothing here mutates the
// document.
package timeline

import (
	"fmt"
	"math"

	"github.com/ivlev/pptx2video/internal/scenario"
)

// TransitionFrames is how long two adjacent scenes overlap when the first
// one ends with a transition.
const TransitionFrames = 15

// Direction is the edge a directional transition enters from.
type Direction string

const (
	FromRight Direction = "from-right"
	FromLeft  Direction = "from-left"
)

// DirectionOf returns the fixed direction of a transition kind, or "" for
// kinds that have none.
func DirectionOf(t scenario.Transition) Direction {
	switch t {
	case scenario.TransitionSlide:
		return FromRight
	case scenario.TransitionWipe:
		return FromLeft
	}
	return ""
}

// TotalFrames is the reported length of the document: the summed scene
// durations times fps, rounded. Transition overlap is not subtracted.
func TotalFrames(doc *scenario.Document) int {
	return int(math.Round(doc.TotalSeconds() * doc.FPS))
}

// FrameWindow is the number of frames a scene occupies on its own.
func FrameWindow(s scenario.Scene, fps float64) int {
	return int(math.Round(s.Base().Duration * fps))
}

// Motion is the Ken Burns camera state at one frame.
type Motion struct {
	Zoom float64
	PanX float64 // percent of frame width
	PanY float64 // percent of frame height
}

// KenBurnsAt interpolates kb linearly at frame f of a w-frame window.
func KenBurnsAt(kb scenario.KenBurns, f, w int) Motion {
	t := progress(f, w)
	return Motion{
		Zoom: lerp(kb.ZoomFrom, kb.ZoomTo, t),
		PanX: lerp(kb.PanXFrom, kb.PanXTo, t),
		PanY: lerp(kb.PanYFrom, kb.PanYTo, t),
	}
}

// Entrance is the state of a text scene's entrance effect at one frame.
type Entrance struct {
	Opacity    float64
	TranslateY float64 // pixels below the resting position
	Scale      float64
}

// Rest is the state of text with no entrance effect.
var Rest = Entrance{Opacity: 1, TranslateY: 0, Scale: 1}

// EntranceAt evaluates anim at frame f. The curves run over the animation's
// own DurationFrames, not the whole scene. A nil animation is at rest.
func EntranceAt(anim *scenario.Animation, f int) Entrance {
	if anim == nil || anim.Entrance == scenario.EntranceNone {
		return Rest
	}

	t := progress(f, anim.DurationFrames)
	eased := easeOutCubic(t)

	e := Rest
	e.Opacity = lerp(0, 1, eased)
	switch anim.Entrance {
	case scenario.EntranceFadeUp:
		e.TranslateY = lerp(30, 0, eased)
	case scenario.EntranceScaleIn:
		e.Scale = lerp(0.85, 1, t)
	}
	return e
}

// Curves holds whichever animation curves apply to a scene at one frame.
type Curves struct {
	Motion   *Motion   // image scenes with Ken Burns
	Entrance *Entrance // text scenes
}

// CurvesAt evaluates the curves of s at its local frame f.
func CurvesAt(s scenario.Scene, f int, fps float64) Curves {
	switch sc := s.(type) {
	case *scenario.ImageScene:
		if sc.KenBurns == nil {
			return Curves{}
		}
		m := KenBurnsAt(*sc.KenBurns, f, FrameWindow(sc, fps))
		return Curves{Motion: &m}
	case *scenario.TextScene:
		e := EntranceAt(sc.Animation, f)
		return Curves{Entrance: &e}
	case *scenario.VideoScene:
		return Curves{}
	default:
		panic(fmt.Sprintf("timeline: unhandled scene %T", s))
	}
}
