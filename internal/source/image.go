package source

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// imageExts maps supported extensions to whether a renderer can show the
// file as is. The rest are converted to PNG when materialized.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  false,
	".tif":  false,
	".tiff": false,
}

func isImage(ext string) bool {
	_, ok := imageExts[strings.ToLower(ext)]
	return ok
}

// ImageSource is a deck of image files, one slide per image, sorted by
// name. Slides carry no text.
type ImageSource struct {
	paths []string
}

func NewImageSource(path string) (*ImageSource, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var paths []string
	if fi.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() && isImage(filepath.Ext(entry.Name())) {
				paths = append(paths, filepath.Join(path, entry.Name()))
			}
		}
		sort.Strings(paths)
	} else {
		paths = []string{path}
	}

	return &ImageSource{paths: paths}, nil
}

func (s *ImageSource) SlideCount() int {
	return len(s.paths)
}

func (s *ImageSource) Slide(index int) (Slide, error) {
	if index < 0 || index >= len(s.paths) {
		return Slide{}, fmt.Errorf("image %d out of range [0, %d)", index, len(s.paths))
	}
	return Slide{ImageRef: s.paths[index]}, nil
}

func (s *ImageSource) Materialize(_ int, ref, destDir, baseName string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", destDir, err)
	}

	ext := strings.ToLower(filepath.Ext(ref))
	if imageExts[ext] {
		filename := baseName + ext
		return filename, copyFile(ref, filepath.Join(destDir, filename))
	}

	img, err := decodeImage(ref)
	if err != nil {
		return "", err
	}
	filename := baseName + ".png"
	out, err := os.Create(filepath.Join(destDir, filename))
	if err != nil {
		return "", err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return "", fmt.Errorf("convert %s: %w", ref, err)
	}
	return filename, out.Close()
}

func (s *ImageSource) Close() error {
	return nil
}

// ImageInfo describes an image file without decoding its pixels.
type ImageInfo struct {
	Width, Height int
	Format        string
}

// ProbeImage reads the dimensions and format of the image at path.
func ProbeImage(path string) (ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImageInfo{}, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("probe %s: %w", path, err)
	}
	return ImageInfo{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
