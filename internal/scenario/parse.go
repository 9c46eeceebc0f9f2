package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by Parse for input that is not JSON at all.
var ErrInvalidJSON = errors.New("document is not valid JSON")

// Parse reads a JSON document and validates it. Fields of the wrong JSON
// type are reported as violations alongside the schema violations.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &ValidationError{Violations: []Violation{{Message: "document must be a JSON object"}}}
	}

	r := &reader{}
	raw := r.document(root)

	doc, err := Validate(raw)
	if len(r.violations) == 0 {
		return doc, err
	}

	// Type errors come first; schema violations under a path that already
	// has a type error would only repeat it.
	merged := append([]Violation(nil), r.violations...)
	var verr *ValidationError
	if errors.As(err, &verr) {
		for _, v := range verr.Violations {
			if !r.covers(v.Path) {
				merged = append(merged, v)
			}
		}
	}
	return nil, &ValidationError{Violations: merged}
}

// UnmarshalJSON makes json.Unmarshal go through Parse, so a decoded
// Document is always a validated one.
func (d *Document) UnmarshalJSON(data []byte) error {
	doc, err := Parse(data)
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}

func (s *TextScene) MarshalJSON() ([]byte, error) {
	type text TextScene
	return json.Marshal(struct {
		Type SceneType `json:"type"`
		text
	}{SceneText, text(*s)})
}

func (s *ImageScene) MarshalJSON() ([]byte, error) {
	type image ImageScene
	return json.Marshal(struct {
		Type SceneType `json:"type"`
		image
	}{SceneImage, image(*s)})
}

func (s *VideoScene) MarshalJSON() ([]byte, error) {
	type video VideoScene
	return json.Marshal(struct {
		Type SceneType `json:"type"`
		video
	}{SceneVideo, video(*s)})
}

// reader turns a gjson tree into a RawDocument.
type reader struct {
	violations []Violation
}

func (r *reader) mismatch(path, want string) {
	r.violations = append(r.violations, Violation{Path: path, Message: "must be " + want})
}

func (r *reader) covers(path string) bool {
	for _, v := range r.violations {
		if path == v.Path || strings.HasPrefix(path, v.Path+".") || strings.HasPrefix(path, v.Path+"[") {
			return true
		}
	}
	return false
}

func present(res gjson.Result) bool {
	return res.Exists() && res.Type != gjson.Null
}

func (r *reader) number(path string, res gjson.Result) *float64 {
	if !present(res) {
		return nil
	}
	if res.Type != gjson.Number {
		r.mismatch(path, "a number")
		return nil
	}
	return Ptr(res.Float())
}

func (r *reader) str(path string, res gjson.Result) *string {
	if !present(res) {
		return nil
	}
	if res.Type != gjson.String {
		r.mismatch(path, "a string")
		return nil
	}
	return Ptr(res.String())
}

func (r *reader) boolean(path string, res gjson.Result) *bool {
	if !present(res) {
		return nil
	}
	if res.Type != gjson.True && res.Type != gjson.False {
		r.mismatch(path, "a boolean")
		return nil
	}
	return Ptr(res.Bool())
}

func (r *reader) object(path string, res gjson.Result) bool {
	if !present(res) {
		return false
	}
	if !res.IsObject() {
		r.mismatch(path, "an object")
		return false
	}
	return true
}

func (r *reader) array(path string, res gjson.Result) []gjson.Result {
	if !present(res) {
		return nil
	}
	if !res.IsArray() {
		r.mismatch(path, "an array")
		return nil
	}
	return res.Array()
}

func (r *reader) document(root gjson.Result) RawDocument {
	raw := RawDocument{
		FPS:       r.number("fps", root.Get("fps")),
		Width:     r.number("width", root.Get("width")),
		Height:    r.number("height", root.Get("height")),
		Output:    r.str("output", root.Get("output")),
		Cinematic: r.boolean("cinematic", root.Get("cinematic")),
	}

	scenes := root.Get("scenes")
	for i, sc := range r.array("scenes", scenes) {
		raw.Scenes = append(raw.Scenes, r.scene(fmt.Sprintf("scenes[%d]", i), sc))
	}
	return raw
}

func (r *reader) scene(path string, res gjson.Result) RawScene {
	if !res.IsObject() {
		r.mismatch(path, "an object")
		return RawScene{}
	}

	rs := RawScene{
		Duration:   r.number(path+".duration", res.Get("duration")),
		Transition: r.str(path+".transition", res.Get("transition")),
		Text:       r.str(path+".text", res.Get("text")),
		FontSize:   r.number(path+".fontSize", res.Get("fontSize")),
		Color:      r.str(path+".color", res.Get("color")),
		Background: r.str(path+".background", res.Get("background")),
		Src:        r.str(path+".src", res.Get("src")),
		Volume:     r.number(path+".volume", res.Get("volume")),
	}
	if t := r.str(path+".type", res.Get("type")); t != nil {
		rs.Type = *t
	}

	if anim := res.Get("textAnimation"); r.object(path+".textAnimation", anim) {
		rs.Animation = &RawAnimation{
			Entrance:       r.str(path+".textAnimation.entrance", anim.Get("entrance")),
			DurationFrames: r.number(path+".textAnimation.durationFrames", anim.Get("durationFrames")),
		}
	}

	if kb := res.Get("kenBurns"); r.object(path+".kenBurns", kb) {
		p := path + ".kenBurns."
		rs.KenBurns = &RawKenBurns{
			ZoomFrom: r.number(p+"zoomFrom", kb.Get("zoomFrom")),
			ZoomTo:   r.number(p+"zoomTo", kb.Get("zoomTo")),
			PanXFrom: r.number(p+"panXFrom", kb.Get("panXFrom")),
			PanXTo:   r.number(p+"panXTo", kb.Get("panXTo")),
			PanYFrom: r.number(p+"panYFrom", kb.Get("panYFrom")),
			PanYTo:   r.number(p+"panYTo", kb.Get("panYTo")),
		}
	}

	for i, o := range r.array(path+".overlays", res.Get("overlays")) {
		op := fmt.Sprintf("%s.overlays[%d]", path, i)
		if !o.IsObject() {
			r.mismatch(op, "an object")
			rs.Overlays = append(rs.Overlays, RawOverlay{})
			continue
		}
		rs.Overlays = append(rs.Overlays, RawOverlay{
			Text:     r.str(op+".text", o.Get("text")),
			FontSize: r.number(op+".fontSize", o.Get("fontSize")),
			Color:    r.str(op+".color", o.Get("color")),
			Top:      r.str(op+".top", o.Get("top")),
			Left:     r.str(op+".left", o.Get("left")),
		})
	}
	return rs
}
