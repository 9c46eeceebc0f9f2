// Package scenario defines the timeline document handed to the renderer:
// its shape, defaults and validity rules.
//
// A *Document only ever comes out of Validate (directly, or through Parse,
// ReadFile or json.Unmarshal), so holders of one can rely on every default
// being applied and every constraint holding. Documents are not mutated
// after validation.
package scenario

// Transition is the effect played between a scene and the next one.
type Transition string

const (
	TransitionNone  Transition = "none"
	TransitionFade  Transition = "fade"
	TransitionSlide Transition = "slide"
	TransitionWipe  Transition = "wipe"
)

// SceneType is the discriminator stored in a scene's "type" field.
type SceneType string

const (
	SceneText  SceneType = "text"
	SceneImage SceneType = "image"
	SceneVideo SceneType = "video"
)

// Entrance is the effect a text scene plays when it appears.
type Entrance string

const (
	EntranceFadeUp  Entrance = "fadeUp"
	EntranceScaleIn Entrance = "scaleIn"
	EntranceNone    Entrance = "none"
)

// Defaults applied by Validate.
const (
	DefaultFPS          = 30.0
	DefaultWidth        = 1920
	DefaultHeight       = 1080
	DefaultOutput       = "out/video.mp4"
	DefaultFontSize     = 80.0
	DefaultTextColor    = "#ffffff"
	DefaultBackground   = "#000000"
	DefaultOverlayColor = "#ffffff"
	DefaultOverlayTop   = "85%"
	DefaultOverlayLeft  = "10%"
	DefaultVolume       = 1.0
	DefaultEntrance     = EntranceFadeUp
	DefaultAnimFrames   = 20
)

// Document is a validated timeline.
type Document struct {
	FPS       float64 `json:"fps"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Output    string  `json:"output"`
	Cinematic bool    `json:"cinematic"`
	Scenes    []Scene `json:"scenes"`
}

// Scene is one of *TextScene, *ImageScene or *VideoScene.
type Scene interface {
	Type() SceneType
	Base() SceneBase
	sealed()
}

// SceneBase holds the fields every scene variant carries.
type SceneBase struct {
	Duration   float64    `json:"duration"` // seconds
	Transition Transition `json:"transition"`
}

type TextScene struct {
	SceneBase
	Text       string     `json:"text"`
	FontSize   float64    `json:"fontSize"`
	Color      string     `json:"color"`
	Background string     `json:"background"`
	Animation  *Animation `json:"textAnimation,omitempty"`
}

type ImageScene struct {
	SceneBase
	Src      string    `json:"src"`
	Overlays []Overlay `json:"overlays,omitempty"`
	KenBurns *KenBurns `json:"kenBurns,omitempty"`
}

type VideoScene struct {
	SceneBase
	Src    string  `json:"src"`
	Volume float64 `json:"volume"` // 0..1
}

// Overlay is a caption drawn over an image scene. Top and Left are CSS-like
// percentages.
type Overlay struct {
	Text     string   `json:"text"`
	FontSize *float64 `json:"fontSize,omitempty"`
	Color    string   `json:"color"`
	Top      string   `json:"top"`
	Left     string   `json:"left"`
}

// KenBurns is a linear zoom and pan across the whole scene. Pan values are
// percentages of the frame.
type KenBurns struct {
	ZoomFrom float64 `json:"zoomFrom"`
	ZoomTo   float64 `json:"zoomTo"`
	PanXFrom float64 `json:"panXFrom"`
	PanXTo   float64 `json:"panXTo"`
	PanYFrom float64 `json:"panYFrom"`
	PanYTo   float64 `json:"panYTo"`
}

// Animation is an entrance effect played over the first DurationFrames
// frames of a text scene.
type Animation struct {
	Entrance       Entrance `json:"entrance"`
	DurationFrames int      `json:"durationFrames"`
}

// DefaultKenBurns is the motion an empty kenBurns object resolves to.
func DefaultKenBurns() KenBurns {
	return KenBurns{ZoomFrom: 1.0, ZoomTo: 1.08, PanXFrom: 0, PanXTo: 2, PanYFrom: 0, PanYTo: 1}
}

// DefaultAnimation is what an empty textAnimation object resolves to.
func DefaultAnimation() Animation {
	return Animation{Entrance: DefaultEntrance, DurationFrames: DefaultAnimFrames}
}

func (s *TextScene) Type() SceneType  { return SceneText }
func (s *ImageScene) Type() SceneType { return SceneImage }
func (s *VideoScene) Type() SceneType { return SceneVideo }

func (s *TextScene) Base() SceneBase  { return s.SceneBase }
func (s *ImageScene) Base() SceneBase { return s.SceneBase }
func (s *VideoScene) Base() SceneBase { return s.SceneBase }

func (*TextScene) sealed()  {}
func (*ImageScene) sealed() {}
func (*VideoScene) sealed() {}

// TotalSeconds sums the scene durations.
func (d *Document) TotalSeconds() float64 {
	total := 0.0
	for _, s := range d.Scenes {
		total += s.Base().Duration
	}
	return total
}

// Ptr returns a pointer to v. It is handy when filling a RawDocument.
func Ptr[T any](v T) *T {
	return &v
}
