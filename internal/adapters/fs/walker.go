// Package fs provides file system adapters for walking and fingerprinting.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker yields the files under a directory tree.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root in lexical order, skipping VCS
// directories and any entry matching an ignore pattern. Yielded paths
// include root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if w.pruned(d.Name(), ignores) {
					return filepath.SkipDir
				}
				return nil
			}

			if matchesIgnore(d.Name(), ignores) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// pruned reports whether a directory is skipped entirely. VCS metadata
// is always pruned.
func (w *Walker) pruned(name string, ignores []string) bool {
	if name == ".git" || name == ".jj" {
		return true
	}
	return matchesIgnore(name, ignores)
}

func matchesIgnore(name string, ignores []string) bool {
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
