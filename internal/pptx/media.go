package pptx

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/ivlev/pptx2video/internal/archive"
)

// ErrMediaNotFound is returned when a resolved image reference points at a
// media part the package does not contain.
var ErrMediaNotFound = errors.New("media not found in package")

// DefaultMediaExt is used when the media part name carries no extension.
const DefaultMediaExt = ".png"

// Materialize copies the media part to destDir/baseName<ext> and returns
// the written file name. destDir is created when missing.
func Materialize(arc *archive.Archive, mediaPath, destDir, baseName string) (string, error) {
	data, err := arc.Bytes(mediaPath)
	if errors.Is(err, archive.ErrEntryNotFound) {
		return "", fmt.Errorf("%w: %s", ErrMediaNotFound, mediaPath)
	}
	if err != nil {
		return "", err
	}

	ext := path.Ext(mediaPath)
	if ext == "" {
		ext = DefaultMediaExt
	}
	filename := baseName + ext

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", destDir, err)
	}
	if err := os.WriteFile(filepath.Join(destDir, filename), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
