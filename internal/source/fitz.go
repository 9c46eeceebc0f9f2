package source

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gen2brain/go-fitz"
)

// FitzPDFSource turns every PDF page into an image slide captioned with the
// page's first line of text.
type FitzPDFSource struct {
	doc  *fitz.Document
	path string
	dpi  int
	mu   sync.Mutex
}

func NewFitzPDFSource(path string, dpi int) (*FitzPDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &FitzPDFSource{doc: doc, path: path, dpi: dpi}, nil
}

func (f *FitzPDFSource) SlideCount() int {
	return f.doc.NumPage()
}

func (f *FitzPDFSource) Slide(index int) (Slide, error) {
	f.mu.Lock()
	text, err := f.doc.Text(index)
	f.mu.Unlock()
	if err != nil {
		return Slide{}, fmt.Errorf("page %d text: %w", index+1, err)
	}

	s := Slide{ImageRef: fmt.Sprintf("page%d", index+1)}
	if caption := firstLine(text); caption != "" {
		s.Texts = []string{caption}
	}
	return s, nil
}

// Materialize renders the page as PNG. Each call opens its own document so
// pages render in parallel.
func (f *FitzPDFSource) Materialize(index int, _, destDir, baseName string) (string, error) {
	workerDoc, err := fitz.New(f.path)
	if err != nil {
		return "", err
	}
	defer workerDoc.Close()

	img, err := workerDoc.ImageDPI(index, float64(f.dpi))
	if err != nil {
		return "", fmt.Errorf("render page %d: %w", index+1, err)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", destDir, err)
	}
	filename := baseName + ".png"
	out, err := os.Create(filepath.Join(destDir, filename))
	if err != nil {
		return "", err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return "", fmt.Errorf("encode page %d: %w", index+1, err)
	}
	return filename, out.Close()
}

func (f *FitzPDFSource) Close() error {
	return f.doc.Close()
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
