package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrEmptyPath is returned when the Fetcher is created without a path.
var ErrEmptyPath = errors.New("file path must not be empty")

// Fetcher implements config.DataFetcher interface for file-based configuration.
// Every call to Fetch reads the file again; nothing is cached between calls.
type Fetcher struct {
	filepath string
}

// New creates a Fetcher bound to fpath. The path is cleaned but not checked
// until Fetch is called.
func New(fpath string) *Fetcher {
	if fpath == "" {
		return &Fetcher{filepath: ""}
	}

	return &Fetcher{filepath: filepath.Clean(fpath)}
}

// Path returns the cleaned path the Fetcher reads from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch reads the whole file and returns its contents.
// Returns an error if the file cannot be read or if the path points to a directory.
func (f *Fetcher) Fetch() ([]byte, error) {
	if f.filepath == "" {
		return nil, ErrEmptyPath
	}

	stat, err := os.Stat(f.filepath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", f.filepath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", f.filepath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(f.filepath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", f.filepath, err)
	}

	return data, nil
}
