package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/haul/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints files and directory trees with XXHash.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// Fingerprint returns a stable hex fingerprint for the file or directory
// tree at path. Tree fingerprints cover relative paths and content, so
// renames and edits both change the result.
func (h *Hasher) Fingerprint(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}

	digest := xxhash.New()
	if info.IsDir() {
		err = h.hashTree(path, digest)
	} else {
		err = h.hashContent(path, digest)
	}
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

// hashTree folds every file under root into the digest in walk order.
func (h *Hasher) hashTree(root string, digest *xxhash.Digest) error {
	for path := range h.walker.WalkFiles(root, nil) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}
		_, _ = digest.WriteString(rel)
		_, _ = digest.Write([]byte{0}) // Separator

		sub := xxhash.New()
		if err := h.hashContent(path, sub); err != nil {
			return err
		}
		if err := binary.Write(digest, binary.LittleEndian, sub.Sum64()); err != nil {
			return zerr.Wrap(err, "failed to write hash to digest")
		}
	}
	return nil
}

func (h *Hasher) hashContent(path string, digest io.Writer) error {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(digest, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return nil
}
