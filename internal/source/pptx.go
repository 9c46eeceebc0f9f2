package source

import (
	"fmt"

	"github.com/ivlev/pptx2video/internal/archive"
	"github.com/ivlev/pptx2video/internal/pptx"
)

// PPTXDeck reads slides from a .pptx package. The slide order is resolved
// when the deck is opened.
type PPTXDeck struct {
	arc    *archive.Archive
	slides []string
}

func OpenPPTX(path string) (*PPTXDeck, error) {
	arc, err := archive.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return NewPPTXDeck(arc)
}

func NewPPTXDeck(arc *archive.Archive) (*PPTXDeck, error) {
	slides, err := pptx.ResolveSlideOrder(arc)
	if err != nil {
		return nil, err
	}
	return &PPTXDeck{arc: arc, slides: slides}, nil
}

func (d *PPTXDeck) SlideCount() int {
	return len(d.slides)
}

// SlidePath is the package path of the slide at index.
func (d *PPTXDeck) SlidePath(index int) string {
	return d.slides[index]
}

func (d *PPTXDeck) Slide(index int) (Slide, error) {
	if index < 0 || index >= len(d.slides) {
		return Slide{}, fmt.Errorf("slide %d out of range [0, %d)", index, len(d.slides))
	}
	c, err := pptx.ExtractContent(d.arc, d.slides[index])
	if err != nil {
		return Slide{}, err
	}
	return Slide{Texts: c.Texts, ImageRef: c.ImageTarget}, nil
}

func (d *PPTXDeck) Materialize(_ int, ref, destDir, baseName string) (string, error) {
	return pptx.Materialize(d.arc, ref, destDir, baseName)
}

func (d *PPTXDeck) Close() error {
	return nil
}
