// Package fs provides file system adapters for verifying and hashing build artifacts.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root in lexical order, skipping VCS metadata. Yielded
// paths include root. A walk error is yielded once and ends the sequence.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				yield("", zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", path))
				return filepath.SkipAll
			}

			if d.IsDir() {
				if isVCSDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func isVCSDir(name string) bool {
	return name == ".git" || name == ".jj"
}
