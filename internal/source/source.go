// Package source reads slide decks. A deck is anything that yields an
// ordered list of slides, each with text runs and at most one image.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Slide is the content of one slide.
type Slide struct {
	Texts []string
	// ImageRef identifies the slide's image inside its deck; it is only
	// meaningful to that deck's Materialize. Empty when there is no image.
	ImageRef string
}

// HasImage reports whether the slide carries an image.
func (s Slide) HasImage() bool {
	return s.ImageRef != ""
}

// Deck is an opened slide deck. Slide and Materialize may be called from
// several goroutines at once.
type Deck interface {
	SlideCount() int
	Slide(index int) (Slide, error)
	// Materialize writes the image referenced by ref to destDir/baseName<ext>
	// and returns the written file name.
	Materialize(index int, ref, destDir, baseName string) (string, error)
	Close() error
}

// Open picks a deck implementation for path: .pptx packages, PDFs rendered
// at dpi, or a single image or directory of images.
func Open(path string, dpi int) (Deck, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return NewImageSource(path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pptx":
		return OpenPPTX(path)
	case ext == ".pdf":
		return NewFitzPDFSource(path, dpi)
	case isImage(ext):
		return NewImageSource(path)
	}
	return nil, fmt.Errorf("unsupported deck format %q: %s", ext, path)
}
