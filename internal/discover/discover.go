// Package discover expands command-line roots into the list of source files
// to check.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Files returns the sorted, de-duplicated files selected by roots. A
// directory root is searched with every include pattern; a file root is
// taken as is. Paths matching an exclude pattern, relative to their root,
// are dropped in both cases.
func Files(roots, include, exclude []string) ([]string, error) {
	for _, p := range slices.Concat(include, exclude) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid glob pattern %q", p)
		}
	}

	var files []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", root, err)
		}

		if !info.IsDir() {
			if !excluded(filepath.ToSlash(root), exclude) {
				files = append(files, root)
			}
			continue
		}

		fsys := os.DirFS(root)
		for _, pattern := range include {
			matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("searching %s for %s: %w", root, pattern, err)
			}
			for _, m := range matches {
				if excluded(m, exclude) {
					continue
				}
				files = append(files, filepath.Join(root, filepath.FromSlash(m)))
			}
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

func excluded(path string, patterns []string) bool {
	for _, pat := range patterns {
		if matched, err := doublestar.Match(pat, path); err == nil && matched {
			return true
		}
	}
	return false
}
