package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/jsonfmt/internal/model"
)

const defaultFileMode os.FileMode = 0o644

// AtomicWriter replaces files so that readers observe either the previous
// content or the new content in full, never a partial file.
type AtomicWriter struct {
	createTemp func(dir, pattern string) (*os.File, error)
	rename     func(oldpath, newpath string) error
}

// NewAtomicWriter returns a writer backed by the local filesystem.
func NewAtomicWriter() *AtomicWriter {
	return &AtomicWriter{
		createTemp: os.CreateTemp,
		rename:     os.Rename,
	}
}

// WriteFile writes data to a temporary sibling of path and renames it into
// place. The temporary file lives in the same directory so the rename never
// crosses filesystems. On failure the temporary file is removed, path is left
// as it was and the error is a model write error.
func (w *AtomicWriter) WriteFile(path string, data []byte) (err error) {
	perm := defaultFileMode
	if info, statErr := os.Stat(path); statErr == nil {
		if info.IsDir() {
			return m.NewWriteError(fmt.Sprintf("cannot write %s", path), errors.New("destination is a directory"))
		}

		perm = info.Mode().Perm()
	}

	tmp, err := w.createTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return m.NewWriteError(fmt.Sprintf("cannot create temporary file for %s", path), err)
	}

	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err := writeAndClose(tmp, data); err != nil {
		return m.NewWriteError(fmt.Sprintf("cannot write temporary file for %s", path), err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return m.NewWriteError(fmt.Sprintf("cannot set permissions for %s", path), err)
	}

	if err := w.rename(tmpName, path); err != nil {
		return m.NewWriteError(fmt.Sprintf("cannot replace %s", path), err)
	}

	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
