// Package archive gives read-only access to the entries of a ZIP container
// such as a .pptx package.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// ErrArchive marks container data that could not be read as a ZIP.
var ErrArchive = errors.New("unreadable archive")

// ErrEntryNotFound is returned when a lookup names a path the archive does
// not contain.
var ErrEntryNotFound = errors.New("entry not found")

// Error reports why a container could not be opened.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v", ErrArchive, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrArchive, e.Err}
}

// Archive is an opened container. It is safe for concurrent lookups.
type Archive struct {
	files map[string]*zip.File
}

// Open reads a ZIP container from memory.
func Open(data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &Error{Err: err}
	}

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		files[f.Name] = f
	}
	return &Archive{files: files}, nil
}

// OpenFile reads the container at path into memory and opens it.
func OpenFile(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Open(data)
}

// Has reports whether name is an entry of the archive.
func (a *Archive) Has(name string) bool {
	_, ok := a.files[name]
	return ok
}

// Names lists all entries in lexical order.
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.files))
	for name := range a.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bytes returns the raw content of an entry.
func (a *Archive) Bytes(name string) ([]byte, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("open %s: %w", name, err)}
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("read %s: %w", name, err)}
	}
	return data, nil
}

// Text returns the content of an entry as a string.
func (a *Archive) Text(name string) (string, error) {
	data, err := a.Bytes(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
