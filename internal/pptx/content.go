package pptx

import (
	"errors"
	"path"
	"strings"

	"github.com/ivlev/pptx2video/internal/archive"
	"github.com/ivlev/pptx2video/internal/xmltree"
)

// Content is what a slide contributes to its scene.
type Content struct {
	// Texts holds every non-empty text run, trimmed, in document order.
	Texts []string
	// ImageTarget is the package path of the slide's first embedded image,
	// or "" when the slide has none that resolves.
	ImageTarget string
}

// HasImage reports whether an image target was resolved.
func (c Content) HasImage() bool {
	return c.ImageTarget != ""
}

// SlideRelsPath returns the relationship part that belongs to a slide:
// ppt/slides/slide3.xml -> ppt/slides/_rels/slide3.xml.rels.
func SlideRelsPath(slidePath string) string {
	dir, file := path.Split(slidePath)
	return path.Join(dir, "_rels", file+".rels")
}

// ExtractContent reads one slide part. Only the first r:embed reference is
// considered; further images on the same slide are ignored. A missing
// slide relationship part or an unknown embed id leaves ImageTarget empty.
// A slide part the manifest lists but the package lacks yields empty
// Content; a malformed one is an error.
func ExtractContent(arc *archive.Archive, slidePath string) (Content, error) {
	slide, err := readPart(arc, slidePath)
	if errors.Is(err, archive.ErrEntryNotFound) {
		return Content{}, nil
	}
	if err != nil {
		return Content{}, err
	}

	var content Content
	for _, t := range xmltree.Collect(slide, xmltree.TextOf("a:t")) {
		if t = strings.TrimSpace(t); t != "" {
			content.Texts = append(content.Texts, t)
		}
	}

	embeds := xmltree.Collect(slide, xmltree.AttrOf("r:embed"))
	if len(embeds) == 0 {
		return content, nil
	}

	relsRoot, err := readPart(arc, SlideRelsPath(slidePath))
	if errors.Is(err, archive.ErrEntryNotFound) {
		return content, nil
	}
	if err != nil {
		return Content{}, err
	}

	rels := ResolveRelationships(relsRoot, KindImage)
	if target, ok := rels[embeds[0]]; ok && target != "" {
		content.ImageTarget = packagePath(path.Dir(slidePath), target)
	}
	return content, nil
}
