package scenario

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Violation is one rejected field.
type Violation struct {
	Path    string // e.g. "scenes[2].kenBurns.zoomTo"
	Message string
}

func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// ValidationError lists every violation found in a document.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "invalid document: " + strings.Join(parts, "; ")
}

// Has reports whether a violation was recorded for path.
func (e *ValidationError) Has(path string) bool {
	for _, v := range e.Violations {
		if v.Path == path {
			return true
		}
	}
	return false
}

// MaxFrames bounds every frame count a document can produce, singly or in
// total, so counts always fit an int32.
const MaxFrames = math.MaxInt32

var (
	hexColor   = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	percentage = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?%$`)
)

// Validate applies defaults to raw and checks every constraint. On failure
// the returned error is a *ValidationError holding all violations, not just
// the first.
func Validate(raw RawDocument) (*Document, error) {
	v := &validator{}

	doc := &Document{
		FPS:       v.positive("fps", raw.FPS, DefaultFPS),
		Width:     v.dimension("width", raw.Width, DefaultWidth),
		Height:    v.dimension("height", raw.Height, DefaultHeight),
		Output:    v.nonEmpty("output", raw.Output, DefaultOutput),
		Cinematic: raw.Cinematic != nil && *raw.Cinematic,
	}

	if len(raw.Scenes) == 0 {
		v.add("scenes", "must contain at least one scene")
	}
	var total float64
	overflow := false
	for i, rs := range raw.Scenes {
		path := fmt.Sprintf("scenes[%d]", i)
		if s := v.scene(path, rs); s != nil {
			doc.Scenes = append(doc.Scenes, s)
			frames := s.Base().Duration * doc.FPS
			if frames > MaxFrames {
				v.add(path+".duration", fmt.Sprintf("spans more than %d frames at %v fps", MaxFrames, doc.FPS))
				overflow = true
			}
			total += frames
		}
	}
	if total > MaxFrames && !overflow {
		v.add("scenes", fmt.Sprintf("timeline spans more than %d frames", MaxFrames))
	}

	if err := v.err(); err != nil {
		return nil, err
	}
	return doc, nil
}

type validator struct {
	violations []Violation
}

func (v *validator) add(path, msg string) {
	v.violations = append(v.violations, Violation{Path: path, Message: msg})
}

func (v *validator) err() error {
	if len(v.violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: v.violations}
}

func (v *validator) scene(path string, rs RawScene) Scene {
	base := SceneBase{
		Duration:   v.requiredPositive(path+".duration", rs.Duration),
		Transition: v.transition(path+".transition", rs.Transition),
	}

	switch SceneType(rs.Type) {
	case SceneText:
		return &TextScene{
			SceneBase:  base,
			Text:       v.requiredString(path+".text", rs.Text),
			FontSize:   v.positive(path+".fontSize", rs.FontSize, DefaultFontSize),
			Color:      v.color(path+".color", rs.Color, DefaultTextColor),
			Background: v.color(path+".background", rs.Background, DefaultBackground),
			Animation:  v.animation(path+".textAnimation", rs.Animation),
		}
	case SceneImage:
		s := &ImageScene{
			SceneBase: base,
			Src:       v.requiredString(path+".src", rs.Src),
			KenBurns:  v.kenBurns(path+".kenBurns", rs.KenBurns),
		}
		for i, ro := range rs.Overlays {
			s.Overlays = append(s.Overlays, v.overlay(fmt.Sprintf("%s.overlays[%d]", path, i), ro))
		}
		return s
	case SceneVideo:
		return &VideoScene{
			SceneBase: base,
			Src:       v.requiredString(path+".src", rs.Src),
			Volume:    v.volume(path+".volume", rs.Volume),
		}
	case "":
		v.add(path+".type", "is required")
	default:
		v.add(path+".type", fmt.Sprintf("unknown scene type %q", rs.Type))
	}
	return nil
}

func (v *validator) overlay(path string, ro RawOverlay) Overlay {
	o := Overlay{
		Color: v.color(path+".color", ro.Color, DefaultOverlayColor),
		Top:   v.percent(path+".top", ro.Top, DefaultOverlayTop),
		Left:  v.percent(path+".left", ro.Left, DefaultOverlayLeft),
	}
	if ro.Text == nil {
		v.add(path+".text", "is required")
	} else {
		o.Text = *ro.Text
	}
	if ro.FontSize != nil {
		size := v.positive(path+".fontSize", ro.FontSize, 0)
		o.FontSize = &size
	}
	return o
}

func (v *validator) kenBurns(path string, rk *RawKenBurns) *KenBurns {
	if rk == nil {
		return nil
	}
	def := DefaultKenBurns()
	return &KenBurns{
		ZoomFrom: v.positive(path+".zoomFrom", rk.ZoomFrom, def.ZoomFrom),
		ZoomTo:   v.positive(path+".zoomTo", rk.ZoomTo, def.ZoomTo),
		PanXFrom: v.finite(path+".panXFrom", rk.PanXFrom, def.PanXFrom),
		PanXTo:   v.finite(path+".panXTo", rk.PanXTo, def.PanXTo),
		PanYFrom: v.finite(path+".panYFrom", rk.PanYFrom, def.PanYFrom),
		PanYTo:   v.finite(path+".panYTo", rk.PanYTo, def.PanYTo),
	}
}

func (v *validator) animation(path string, ra *RawAnimation) *Animation {
	if ra == nil {
		return nil
	}
	a := DefaultAnimation()

	if ra.Entrance != nil {
		switch e := Entrance(*ra.Entrance); e {
		case EntranceFadeUp, EntranceScaleIn, EntranceNone:
			a.Entrance = e
		default:
			v.add(path+".entrance", fmt.Sprintf("must be one of fadeUp, scaleIn, none; got %q", *ra.Entrance))
		}
	}

	if ra.DurationFrames != nil {
		n := *ra.DurationFrames
		if !(n > 0) || n > MaxFrames || n != math.Trunc(n) {
			v.add(path+".durationFrames", fmt.Sprintf("must be a whole number of frames between 1 and %d", MaxFrames))
		} else {
			a.DurationFrames = int(n)
		}
	}
	return &a
}

func (v *validator) transition(path string, raw *string) Transition {
	if raw == nil {
		return TransitionNone
	}
	switch t := Transition(*raw); t {
	case TransitionNone, TransitionFade, TransitionSlide, TransitionWipe:
		return t
	}
	v.add(path, fmt.Sprintf("must be one of none, fade, slide, wipe; got %q", *raw))
	return TransitionNone
}

func (v *validator) positive(path string, raw *float64, def float64) float64 {
	if raw == nil {
		return def
	}
	if !(*raw > 0) || math.IsInf(*raw, 0) {
		v.add(path, "must be a positive number")
		return def
	}
	return *raw
}

func (v *validator) requiredPositive(path string, raw *float64) float64 {
	if raw == nil {
		v.add(path, "is required")
		return 0
	}
	return v.positive(path, raw, 0)
}

func (v *validator) finite(path string, raw *float64, def float64) float64 {
	if raw == nil {
		return def
	}
	if math.IsNaN(*raw) || math.IsInf(*raw, 0) {
		v.add(path, "must be a finite number")
		return def
	}
	return *raw
}

func (v *validator) dimension(path string, raw *float64, def int) int {
	if raw == nil {
		return def
	}
	n := v.positive(path, raw, float64(def))
	if n != math.Trunc(n) || n > math.MaxInt32 {
		v.add(path, fmt.Sprintf("must be a whole number of pixels up to %d", math.MaxInt32))
		return def
	}
	return int(n)
}

func (v *validator) volume(path string, raw *float64) float64 {
	if raw == nil {
		return DefaultVolume
	}
	if !(*raw >= 0 && *raw <= 1) {
		v.add(path, "must be between 0 and 1")
		return DefaultVolume
	}
	return *raw
}

func (v *validator) requiredString(path string, raw *string) string {
	if raw == nil {
		v.add(path, "is required")
		return ""
	}
	if *raw == "" {
		v.add(path, "must not be empty")
	}
	return *raw
}

func (v *validator) nonEmpty(path string, raw *string, def string) string {
	if raw == nil {
		return def
	}
	if *raw == "" {
		v.add(path, "must not be empty")
		return def
	}
	return *raw
}

func (v *validator) color(path string, raw *string, def string) string {
	if raw == nil {
		return def
	}
	if !hexColor.MatchString(*raw) {
		v.add(path, fmt.Sprintf("must be a hex color like #ffffff; got %q", *raw))
		return def
	}
	return *raw
}

func (v *validator) percent(path string, raw *string, def string) string {
	if raw == nil {
		return def
	}
	if !percentage.MatchString(*raw) {
		v.add(path, fmt.Sprintf("must be a percentage like 85%%; got %q", *raw))
		return def
	}
	return *raw
}
