// Package cas implements the local landing store for fetched artifact files.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.FileStore with a stage-then-rename layout.
//
// In-flight fetches write into <root>/.haul/staging; Commit renames the
// staged file to <root>/.haul/store/<group>/<module>/<version>/<file>.
// The rename is atomic within one filesystem, so a committed path never
// exposes a half-written file.
type Store struct {
	stagingDir string
	storeDir   string
}

// NewStore creates a store rooted at the given directory, creating the
// staging and store directories if needed.
func NewStore(root string) (*Store, error) {
	s := &Store{
		stagingDir: filepath.Join(root, domain.DefaultStagingPath()),
		storeDir:   filepath.Join(root, domain.DefaultStorePath()),
	}

	if err := os.MkdirAll(s.stagingDir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create staging directory")
	}
	if err := os.MkdirAll(s.storeDir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create store directory")
	}
	return s, nil
}

// Stage creates an empty staging file for the artifact and returns its path.
// Each call yields a fresh file, so concurrent fetches never share staging.
func (s *Store) Stage(id domain.ArtifactID) (string, error) {
	f, err := os.CreateTemp(s.stagingDir, id.FileName()+".*")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create staging file")
	}
	if err := f.Close(); err != nil {
		return "", zerr.Wrap(err, "failed to close staging file")
	}
	return f.Name(), nil
}

// Commit moves a staged file into its final location and returns that path.
func (s *Store) Commit(id domain.ArtifactID, staged string) (string, error) {
	final := s.Path(id)

	if err := os.MkdirAll(filepath.Dir(final), domain.DirPerm); err != nil {
		return "", zerr.Wrap(err, "failed to create artifact directory")
	}

	// CreateTemp makes staging files private; committed artifacts are
	// readable by consumers.
	if err := os.Chmod(staged, domain.FilePerm); err != nil {
		return "", zerr.Wrap(err, "failed to chmod staged file")
	}

	// Atomic rename
	if err := os.Rename(staged, final); err != nil {
		return "", zerr.Wrap(err, "failed to commit staged file")
	}

	return final, nil
}

// Discard removes a staged file after a failed fetch. Discarding an
// already-removed file is not an error.
func (s *Store) Discard(staged string) error {
	if err := os.Remove(staged); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to discard staging file")
	}
	return nil
}

// Path returns the final location an artifact commits to.
func (s *Store) Path(id domain.ArtifactID) string {
	c := id.Component
	return filepath.Join(
		s.storeDir,
		c.Group.String(),
		c.Module.String(),
		c.Version.String(),
		id.FileName(),
	)
}
