package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/jsonfmt/internal/model"
)

// ResolveDestination returns the path the canonical form of source is written
// to. Without a root the source is rewritten in place. With a root, the
// source's location relative to workingDir is recreated beneath root; sources
// that are not strictly inside workingDir are rejected with a config error.
func ResolveDestination(source, root, workingDir m.Path) (m.Path, error) {
	if root == "" {
		return source, nil
	}

	wd := filepath.Clean(string(workingDir))

	abs := string(source)
	if !source.IsAbs() {
		abs = filepath.Join(wd, abs)
	}

	abs = filepath.Clean(abs)

	rel, err := filepath.Rel(wd, abs)
	if err != nil || !isInside(rel) {
		return "", m.NewConfigError(
			fmt.Sprintf("cannot mirror %s under %s", source, root),
			m.ErrOutsideWorkingDir,
		)
	}

	rootDir := string(root)
	if !root.IsAbs() {
		rootDir = filepath.Join(wd, rootDir)
	}

	return m.Path(filepath.Join(rootDir, rel)), nil
}

func isInside(rel string) bool {
	if rel == "." || rel == ".." {
		return false
	}

	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
