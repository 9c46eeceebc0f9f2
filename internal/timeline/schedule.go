package timeline

import "github.com/ivlev/pptx2video/internal/scenario"

// Segment places one scene on the timeline.
type Segment struct {
	Scene  scenario.Scene
	Start  int
	Window int
}

// End is the first frame after the segment.
func (s Segment) End() int {
	return s.Start + s.Window
}

// Span is a transition between scene From and scene From+1. During its
// frames both scenes are on screen.
type Span struct {
	From      int
	Kind      scenario.Transition
	Direction Direction
	Start     int
	Frames    int
}

// Plan is the laid-out timeline of a document.
type Plan struct {
	FPS         float64
	Segments    []Segment
	Transitions []Span

	// Length is the rendered content length once transitions overlap
	// adjacent scenes. TotalFrames is the reported length; frames between
	// the two hold the last scene's final frame.
	Length      int
	TotalFrames int
}

// Schedule lays the scenes of doc end to end. A scene whose transition is
// not none overlaps the next one by TransitionFrames, clamped to the next
// scene's window and to what is left of its own window after the incoming
// overlap. Transitions therefore never overlap each other and at most two
// scenes are on screen at any frame.
func Schedule(doc *scenario.Document) *Plan {
	p := &Plan{
		FPS:         doc.FPS,
		Segments:    make([]Segment, 0, len(doc.Scenes)),
		TotalFrames: TotalFrames(doc),
	}

	cursor, incoming := 0, 0
	for i, s := range doc.Scenes {
		seg := Segment{Scene: s, Start: cursor, Window: FrameWindow(s, doc.FPS)}
		p.Segments = append(p.Segments, seg)
		cursor = seg.End()

		used := incoming
		incoming = 0

		kind := s.Base().Transition
		if i == len(doc.Scenes)-1 || kind == scenario.TransitionNone {
			continue
		}
		overlap := min(TransitionFrames, seg.Window-used, FrameWindow(doc.Scenes[i+1], doc.FPS))
		if overlap <= 0 {
			continue
		}
		incoming = overlap
		cursor -= overlap
		p.Transitions = append(p.Transitions, Span{
			From:      i,
			Kind:      kind,
			Direction: DirectionOf(kind),
			Start:     cursor,
			Frames:    overlap,
		})
	}
	p.Length = cursor
	return p
}

// Frame describes what is on screen at one absolute frame.
type Frame struct {
	Scene int // index of the scene being shown, or the outgoing one
	Local int // frame relative to that scene's start

	// Set only inside a transition.
	Transition *Span
	Incoming   int
	InLocal    int
	Progress   float64 // 0 at the first transition frame
}

// At reports what is on screen at frame. It returns false outside
// [0, max(Length, TotalFrames)).
func (p *Plan) At(frame int) (Frame, bool) {
	if frame < 0 || frame >= max(p.Length, p.TotalFrames) || len(p.Segments) == 0 {
		return Frame{}, false
	}

	if frame >= p.Length {
		last := len(p.Segments) - 1
		return Frame{Scene: last, Local: max(p.Segments[last].Window-1, 0)}, true
	}

	for i := range p.Transitions {
		tr := &p.Transitions[i]
		if frame < tr.Start || frame >= tr.Start+tr.Frames {
			continue
		}
		return Frame{
			Scene:      tr.From,
			Local:      frame - p.Segments[tr.From].Start,
			Transition: tr,
			Incoming:   tr.From + 1,
			InLocal:    frame - p.Segments[tr.From+1].Start,
			Progress:   float64(frame-tr.Start) / float64(tr.Frames),
		}, true
	}

	for i, seg := range p.Segments {
		if frame >= seg.Start && frame < seg.End() {
			return Frame{Scene: i, Local: frame - seg.Start}, true
		}
	}
	return Frame{}, false
}
