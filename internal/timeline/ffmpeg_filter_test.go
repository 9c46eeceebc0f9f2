package timeline

import (
	"strings"
	"testing"

	"github.com/ivlev/pptx2video/internal/scenario"
)

func TestZoomPanFilter(t *testing.T) {
	filter := ZoomPanFilter(scenario.DefaultKenBurns(), 150, 30, 1920, 1080)

	for _, want := range []string{
		"zoompan=",
		"z='1.000000+0.080000*min(on/150,1)'",
		"x='iw/2-iw/zoom/2-(0.000000+2.000000*min(on/150,1))*iw/100'",
		"y='ih/2-ih/zoom/2-(0.000000+1.000000*min(on/150,1))*ih/100'",
		"d=150",
		"s=1920x1080",
		"fps=30",
	} {
		if !strings.Contains(filter, want) {
			t.Errorf("Filter should contain %q", want)
		}
	}

	t.Logf("Generated filter: %s", filter)
}

func TestZoomPanFilterStatic(t *testing.T) {
	kb := scenario.KenBurns{ZoomFrom: 1.2, ZoomTo: 1.2}
	filter := ZoomPanFilter(kb, 0, 24, 1280, 720)

	if !strings.Contains(filter, "z='1.200000'") || !strings.Contains(filter, "d=1:") {
		t.Errorf("Unexpected static filter: %s", filter)
	}
}

func TestPlanFilters(t *testing.T) {
	doc := mustDoc(t, scenario.RawDocument{Scenes: []scenario.RawScene{
		text(1, "none"),
		{Type: "image", Src: scenario.Ptr("a.png"), Duration: scenario.Ptr(2.0), KenBurns: &scenario.RawKenBurns{}},
		{Type: "image", Src: scenario.Ptr("b.png"), Duration: scenario.Ptr(2.0)},
	}})

	filters := Schedule(doc).Filters(doc.Width, doc.Height)
	if len(filters) != 1 {
		t.Fatalf("Expected one filter, got %d", len(filters))
	}
	if !strings.Contains(filters[1], "d=60") {
		t.Errorf("Expected a 60-frame filter, got %s", filters[1])
	}
}
