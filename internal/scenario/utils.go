package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// GeneratePath creates a timestamped document filename inside dir.
func GeneratePath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("script_%s.json", timestamp))
}

// FindLatest finds the most recently modified JSON or YAML document in dir.
func FindLatest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read documents directory: %w", err)
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	var docs []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".json" && !IsYAML(name) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		docs = append(docs, candidate{filepath.Join(dir, name), info.ModTime()})
	}

	if len(docs) == 0 {
		return "", fmt.Errorf("no documents found in %s", dir)
	}

	// Newest first
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].modTime.After(docs[j].modTime)
	})
	return docs[0].path, nil
}
