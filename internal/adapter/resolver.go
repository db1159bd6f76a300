package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/mouse-blink/jsonfmt/internal/model"
)

// ResolveArgs describes which inputs the user selected.
type ResolveArgs struct {
	// Root is the directory relative files and patterns are resolved against.
	Root m.Path
	// Files are explicit paths. They are kept even when missing and are never
	// excluded.
	Files []string
	// Globs are doublestar patterns.
	Globs []string
	// DefaultGlobs are used only when neither Files nor Globs are set.
	DefaultGlobs []string
	// Exclude are doublestar patterns matched against glob results relative to Root.
	Exclude []string
	// SkipDirs are absolute directories whose glob matches are dropped, such
	// as the mirror root of a fix run.
	SkipDirs     []m.Path
	IncludeAI    bool
	IncludeDemos bool
}

var alwaysExcludedSegments = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	".build":       {},
	"vendor":       {},
}

var aiDirectories = []string{"/ai/imports/", "/ai/exports/"}

// Resolve expands args into absolute paths. Explicit files come first in the
// order given, followed by the sorted matches of each pattern in turn.
func (a *LocalSourceFSAdapter) Resolve(args ResolveArgs) ([]m.Path, error) {
	root := string(args.Root)
	if root == "" {
		wd, err := a.Getwd()
		if err != nil {
			return nil, err
		}

		root = string(wd)
	}

	seen := make(map[string]struct{})
	paths := []m.Path{}

	add := func(path string) {
		if _, exists := seen[path]; exists {
			return
		}

		seen[path] = struct{}{}
		paths = append(paths, m.Path(path))
	}

	for _, file := range args.Files {
		abs, err := normalizePath(file, root)
		if err != nil {
			return nil, m.NewIOError(fmt.Sprintf("cannot resolve %s", file), err)
		}

		add(abs)
	}

	patterns := args.Globs
	if len(args.Files) == 0 && len(args.Globs) == 0 {
		patterns = args.DefaultGlobs
	}

	for _, pattern := range args.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, m.NewConfigError(fmt.Sprintf("invalid exclude pattern %q", pattern), doublestar.ErrBadPattern)
		}
	}

	for _, pattern := range patterns {
		matches, err := globFiles(root, pattern)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			excluded, err := isExcluded(root, match, args)
			if err != nil {
				return nil, err
			}

			if !excluded {
				add(match)
			}
		}
	}

	return paths, nil
}

// globFiles returns the sorted absolute paths of regular files matching pattern.
func globFiles(root, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return nil, m.NewConfigError(fmt.Sprintf("invalid glob pattern %q", pattern), doublestar.ErrBadPattern)
	}

	base, rest := root, filepath.ToSlash(pattern)
	if filepath.IsAbs(pattern) {
		base, rest = doublestar.SplitPattern(rest)
		base = filepath.FromSlash(base)
	}

	if _, err := os.Stat(base); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, m.NewIOError(fmt.Sprintf("cannot read %s", base), err)
	}

	matches, err := doublestar.Glob(os.DirFS(base), rest, doublestar.WithFilesOnly())
	if err != nil {
		return nil, m.NewConfigError(fmt.Sprintf("invalid glob pattern %q", pattern), err)
	}

	sort.Strings(matches)

	result := make([]string, 0, len(matches))
	for _, match := range matches {
		result = append(result, filepath.Join(base, filepath.FromSlash(match)))
	}

	return result, nil
}

func isExcluded(root, path string, args ResolveArgs) (bool, error) {
	for _, dir := range args.SkipDirs {
		if isWithin(string(dir), path) {
			return true, nil
		}
	}

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = path
	}

	rel = filepath.ToSlash(rel)
	wrapped := "/" + strings.TrimPrefix(rel, "/") + "/"

	if !args.IncludeAI {
		for _, dir := range aiDirectories {
			if strings.Contains(wrapped, dir) {
				return true, nil
			}
		}
	}

	segments := strings.Split(strings.Trim(rel, "/"), "/")
	for _, segment := range segments[:len(segments)-1] {
		if _, skip := alwaysExcludedSegments[segment]; skip {
			return true, nil
		}

		if segment == "demos" && !args.IncludeDemos {
			return true, nil
		}
	}

	for _, pattern := range args.Exclude {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, m.NewConfigError(fmt.Sprintf("invalid exclude pattern %q", pattern), err)
		}

		if matched {
			return true, nil
		}
	}

	return false, nil
}

// isWithin reports whether path is dir or lies below it.
func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
