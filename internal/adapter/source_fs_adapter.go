// Package adapter contains the filesystem adapters used by the JSON formatter.
package adapter

import (
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/jsonfmt/internal/model"
)

const mirrorDirMode os.FileMode = 0o755

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when formatting files. It hides direct `os` access so the
// orchestration logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Resolve expands explicit files and glob patterns into the ordered,
	// de-duplicated list of absolute paths to process.
	Resolve(args ResolveArgs) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFileAtomic replaces the file at path with content. Readers never
	// observe a partially written file.
	WriteFileAtomic(path m.Path, content []byte) error

	// MkdirAll creates path and any missing parents.
	MkdirAll(path m.Path) error

	// Getwd returns the absolute working directory.
	Getwd() (m.Path, error)
}

// LocalSourceFSAdapter is the SourceFSAdapter backed by the local filesystem.
type LocalSourceFSAdapter struct {
	writer *AtomicWriter
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{writer: NewAtomicWriter()}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user-selected inputs is the purpose of this tool
	return os.ReadFile(string(path))
}

// WriteFileAtomic writes content through the atomic writer.
func (a *LocalSourceFSAdapter) WriteFileAtomic(path m.Path, content []byte) error {
	return a.writer.WriteFile(string(path), content)
}

// MkdirAll creates a directory tree for mirrored output.
func (a *LocalSourceFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), mirrorDirMode)
}

// Getwd returns the process working directory.
func (a *LocalSourceFSAdapter) Getwd() (m.Path, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", m.NewIOError("cannot determine working directory", err)
	}

	return m.Path(wd), nil
}

// normalizePath expands a leading "~" and makes path absolute against base.
func normalizePath(path string, base string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(path, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		path = filepath.Join(home, suffix)
	}

	if path == "" {
		path = "."
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}

	return filepath.Clean(path), nil
}
