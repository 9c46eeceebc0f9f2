package source

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/bmp"

	"github.com/ivlev/pptx2video/internal/pptx"
	"github.com/ivlev/pptx2video/internal/pptx/pptxtest"
)

func writeDeck(t *testing.T, files map[string][]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(path, pptxtest.Zip(t, files), 0644); err != nil {
		t.Fatalf("Failed to write deck: %v", err)
	}
	return path
}

func writeImage(t *testing.T, path string, encode func(*os.File, image.Image) error) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{B: 80, A: 255}), image.Point{}, draw.Src)
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
}

func encodePNG(f *os.File, img image.Image) error { return png.Encode(f, img) }
func encodeBMP(f *os.File, img image.Image) error { return bmp.Encode(f, img) }

func TestPPTXDeck(t *testing.T) {
	deck, err := Open(writeDeck(t, pptxtest.TwoSlideDeck()), 150)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer deck.Close()

	if deck.SlideCount() != 2 {
		t.Fatalf("Expected 2 slides, got %d", deck.SlideCount())
	}

	first, err := deck.Slide(0)
	if err != nil {
		t.Fatalf("Slide(0) failed: %v", err)
	}
	want := Slide{Texts: []string{"Slide One Title"}, ImageRef: "ppt/media/image1.png"}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("slide 0 mismatch (-want +got):\n%s", diff)
	}

	second, err := deck.Slide(1)
	if err != nil {
		t.Fatalf("Slide(1) failed: %v", err)
	}
	if second.HasImage() || len(second.Texts) != 1 || second.Texts[0] != "Slide Two Content" {
		t.Errorf("unexpected slide 1: %+v", second)
	}

	if _, err := deck.Slide(2); err == nil {
		t.Error("Expected an error for an out of range slide")
	}

	dir := t.TempDir()
	name, err := deck.Materialize(0, first.ImageRef, dir, "slide1")
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}
	if name != "slide1.png" {
		t.Errorf("Expected slide1.png, got %s", name)
	}
}

func TestOpenPPTXWithoutSlides(t *testing.T) {
	files := pptxtest.TwoSlideDeck()
	files["ppt/presentation.xml"] = []byte(pptxtest.Presentation())

	_, err := Open(writeDeck(t, files), 150)
	if !errors.Is(err, pptx.ErrNoSlidesFound) {
		t.Errorf("Expected ErrNoSlidesFound, got %v", err)
	}
}

func TestImageSourceDirectory(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "b.bmp"), encodeBMP)
	writeImage(t, filepath.Join(dir, "a.png"), encodePNG)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0644); err != nil {
		t.Fatal(err)
	}

	deck, err := Open(dir, 0)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer deck.Close()

	if deck.SlideCount() != 2 {
		t.Fatalf("Expected 2 images, got %d", deck.SlideCount())
	}

	out := t.TempDir()
	for i, want := range []string{"slide1.png", "slide2.png"} {
		s, err := deck.Slide(i)
		if err != nil {
			t.Fatalf("Slide(%d) failed: %v", i, err)
		}
		if len(s.Texts) != 0 || !s.HasImage() {
			t.Errorf("unexpected slide %d: %+v", i, s)
		}

		name, err := deck.Materialize(i, s.ImageRef, out, strings.TrimSuffix(want, ".png"))
		if err != nil {
			t.Fatalf("Materialize(%d) failed: %v", i, err)
		}
		if name != want {
			t.Errorf("Expected %s, got %s", want, name)
		}

		// The BMP is converted, so both come out as real PNGs.
		info, err := ProbeImage(filepath.Join(out, name))
		if err != nil {
			t.Fatalf("ProbeImage failed: %v", err)
		}
		if info.Format != "png" || info.Width != 4 || info.Height != 3 {
			t.Errorf("unexpected image info %+v", info)
		}
	}
}

func TestProbeImageBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.bmp")
	writeImage(t, path, encodeBMP)

	info, err := ProbeImage(path)
	if err != nil {
		t.Fatalf("ProbeImage failed: %v", err)
	}
	if info.Format != "bmp" || info.Width != 4 || info.Height != 3 {
		t.Errorf("unexpected image info %+v", info)
	}
}

func TestOpenUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.key")
	if err := os.WriteFile(path, []byte("keynote"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path, 150); err == nil {
		t.Error("Expected an error for an unsupported format")
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("\n   \n  Quarterly Results \nQ3\n"); got != "Quarterly Results" {
		t.Errorf("Expected the first non-empty line, got %q", got)
	}
	if got := firstLine(" \n"); got != "" {
		t.Errorf("Expected empty caption, got %q", got)
	}
}
