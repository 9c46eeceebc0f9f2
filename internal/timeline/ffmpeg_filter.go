package timeline

import (
	"fmt"

	"github.com/ivlev/pptx2video/internal/scenario"
)

// ZoomPanFilter expresses a Ken Burns move as an FFmpeg zoompan filter that
// turns one still image into w frames, matching KenBurnsAt frame for frame.
func ZoomPanFilter(kb scenario.KenBurns, w int, fps float64, width, height int) string {
	t := "1"
	if w > 0 {
		t = fmt.Sprintf("min(on/%d,1)", w)
	}

	zoomExpr := lerpExpr(kb.ZoomFrom, kb.ZoomTo, t)
	xExpr := fmt.Sprintf("iw/2-iw/zoom/2-(%s)*iw/100", lerpExpr(kb.PanXFrom, kb.PanXTo, t))
	yExpr := fmt.Sprintf("ih/2-ih/zoom/2-(%s)*ih/100", lerpExpr(kb.PanYFrom, kb.PanYTo, t))

	return fmt.Sprintf("zoompan=z='%s':x='%s':y='%s':d=%d:s=%dx%d:fps=%g",
		zoomExpr, xExpr, yExpr, max(w, 1), width, height, fps)
}

// Filters returns the zoompan filter of every image scene with Ken Burns,
// keyed by scene index.
func (p *Plan) Filters(width, height int) map[int]string {
	filters := make(map[int]string)
	for i, seg := range p.Segments {
		img, ok := seg.Scene.(*scenario.ImageScene)
		if !ok || img.KenBurns == nil {
			continue
		}
		filters[i] = ZoomPanFilter(*img.KenBurns, seg.Window, p.FPS, width, height)
	}
	return filters
}

// lerpExpr is lerp written as an FFmpeg expression of t
func lerpExpr(a, b float64, t string) string {
	if a == b {
		return fmt.Sprintf("%.6f", a)
	}
	return fmt.Sprintf("%.6f+%.6f*%s", a, b-a, t)
}
