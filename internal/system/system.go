package system

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

// DeckExtensions are the inputs FindLatestDeck picks from.
var DeckExtensions = []string{".pptx", ".pdf"}

// DefaultWorkers is the number of logical CPUs, falling back to the Go
// runtime's count when the OS query fails.
func DefaultWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}

// FindLatestDeck returns the most recently modified slide deck in dir.
func FindLatestDeck(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !isDeck(f.Name()) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no .pptx or .pdf decks found in %s", dir)
	}

	return latestFile, nil
}

func isDeck(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range DeckExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
