// Package fsutil provides file system helpers for reading program input.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// StdinName is the display name of standard input.
const StdinName = "<stdin>"

// Source is a program input: a named file, or standard input when the path
// is empty or "-". It satisfies driver.Source.
type Source struct {
	path  string
	stdin io.Reader
}

// NewSource creates a source for path, reading stdin when path is empty or
// "-".
func NewSource(path string, stdin io.Reader) *Source {
	return &Source{path: path, stdin: stdin}
}

// IsStdin reports whether the source reads standard input.
func (s *Source) IsStdin() bool {
	return s.path == "" || s.path == "-"
}

// Name returns the path, or StdinName.
func (s *Source) Name() string {
	if s.IsStdin() {
		return StdinName
	}
	return s.path
}

// Open opens the source. Closing a stdin source leaves the process's
// standard input open.
func (s *Source) Open() (io.ReadCloser, error) {
	if s.IsStdin() {
		if s.stdin == nil {
			return nil, errors.New("no standard input available")
		}
		return io.NopCloser(s.stdin), nil
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", s.path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path %s is a directory", s.path)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	return f, nil
}
