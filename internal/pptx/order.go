package pptx

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/ivlev/pptx2video/internal/archive"
	"github.com/ivlev/pptx2video/internal/xmltree"
)

const (
	ManifestPath     = "ppt/presentation.xml"
	ManifestRelsPath = "ppt/_rels/presentation.xml.rels"
)

// ErrNoSlidesFound is returned when the manifest lists no slide that can be
// resolved to a part.
var ErrNoSlidesFound = errors.New("no slides found in presentation")

// ResolveSlideOrder returns the package paths of the slide parts in the
// order the manifest lists them. Slide ids whose relationship cannot be
// resolved are skipped.
func ResolveSlideOrder(arc *archive.Archive) ([]string, error) {
	pres, err := readPart(arc, ManifestPath)
	if err != nil {
		return nil, err
	}
	relsRoot, err := readPart(arc, ManifestRelsPath)
	if err != nil {
		return nil, err
	}

	rels := ResolveRelationships(relsRoot, KindSlide)

	var ids []*xmltree.Element
	if lst := pres.Child("p:sldIdLst"); lst != nil {
		ids = lst.All("p:sldId")
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %s has an empty slide list", ErrNoSlidesFound, ManifestPath)
	}

	slides := make([]string, 0, len(ids))
	for _, sldID := range ids {
		rID := sldID.Attrs["r:id"]
		if rID == "" {
			continue
		}
		target, ok := rels[rID]
		if !ok || target == "" {
			continue
		}
		slides = append(slides, packagePath("ppt", target))
	}

	if len(slides) == 0 {
		return nil, fmt.Errorf("%w: none of %d slide ids resolve", ErrNoSlidesFound, len(ids))
	}
	return slides, nil
}

// packagePath resolves a relationship target against the directory of its
// source part. Targets starting with "/" are already package-absolute.
func packagePath(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Join(baseDir, target)
}

func readPart(arc *archive.Archive, name string) (*xmltree.Element, error) {
	text, err := arc.Text(name)
	if err != nil {
		return nil, err
	}
	root, err := xmltree.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return root, nil
}
