package fs

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/turbo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes content digests of artifacts.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content. A directory is hashed over the
// relative paths and contents of every file below it.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	if info.IsDir() {
		return h.hashDir(path)
	}
	return hashFile(path)
}

func (h *Hasher) hashDir(root string) (uint64, error) {
	hasher := xxhash.New()
	for path, err := range h.walker.WalkFiles(root) {
		if err != nil {
			return 0, err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return 0, zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}
		_, _ = hasher.WriteString(filepath.ToSlash(rel))
		_, _ = hasher.Write([]byte{0})

		sum, err := hashFile(path)
		if err != nil {
			return 0, err
		}
		if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
			return 0, zerr.Wrap(err, "failed to write hash to digest")
		}
	}
	return hasher.Sum64(), nil
}

func hashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}
