// Package pptx recovers slide order and per-slide content from a
// PresentationML package.
package pptx

import (
	"strings"

	"github.com/ivlev/pptx2video/internal/xmltree"
)

// Relationship kinds matched against the Type URI of a relationship entry.
const (
	KindSlide = "slide"
	KindImage = "image"
)

// ResolveRelationships maps relationship ids to targets for the direct
// Relationship children of root whose Type contains kind. A leading "./"
// is stripped from targets. If an id repeats, the last entry wins.
func ResolveRelationships(root *xmltree.Element, kind string) map[string]string {
	rels := make(map[string]string)
	if root == nil {
		return rels
	}

	for _, rel := range root.All("Relationship") {
		id := rel.Attrs["Id"]
		if id == "" {
			continue
		}
		if !strings.Contains(rel.Attrs["Type"], kind) {
			continue
		}
		rels[id] = strings.TrimPrefix(rel.Attrs["Target"], "./")
	}
	return rels
}
