package resolve

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"slices"
	"sync"

	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/haul/internal/core/ports"
	"go.trai.ch/zerr"
)

// FetchSpec describes where an artifact's bytes come from and how to
// verify them.
type FetchSpec struct {
	// Repository is the repository declaration to fetch from.
	Repository domain.Repository

	// Path is the object path within the repository.
	Path string

	// SHA256 is the hex-encoded expected checksum. Empty disables verification.
	SHA256 string

	// BuiltBy lists tasks that produce this artifact locally.
	BuiltBy []domain.TaskRef
}

// NewArtifact creates a repository-backed artifact. The file is fetched
// through source and landed in store on the first File call; later calls
// replay the memoized outcome.
func NewArtifact(id domain.ArtifactID, spec FetchSpec, source ports.Source, store ports.FileStore) ports.Artifact {
	return &resolvedArtifact{
		id:     id,
		spec:   spec,
		source: source,
		store:  store,
	}
}

type resolvedArtifact struct {
	id     domain.ArtifactID
	spec   FetchSpec
	source ports.Source
	store  ports.FileStore

	once sync.Once
	path string
	err  error
}

func (a *resolvedArtifact) ID() domain.ArtifactID {
	return a.id
}

// File fetches the artifact on first use. Concurrent callers block on the
// in-flight fetch; every caller sees the same path or the same error.
func (a *resolvedArtifact) File(ctx context.Context) (string, error) {
	a.once.Do(func() {
		a.path, a.err = a.fetch(ctx)
	})
	return a.path, a.err
}

func (a *resolvedArtifact) BuildDependencies() []domain.TaskRef {
	return slices.Clone(a.spec.BuiltBy)
}

func (a *resolvedArtifact) fetch(ctx context.Context) (string, error) {
	staged, err := a.store.Stage(a.id)
	if err != nil {
		return "", zerr.Wrap(err, "failed to stage artifact")
	}

	if err := a.download(ctx, staged); err != nil {
		// Best effort cleanup; the original failure is what matters.
		_ = a.store.Discard(staged)
		return "", zerr.With(err, "artifact", a.id.String())
	}

	path, err := a.store.Commit(a.id, staged)
	if err != nil {
		return "", zerr.Wrap(err, "failed to commit artifact")
	}
	return path, nil
}

// download streams the artifact's bytes into the staged file, hashing
// them on the way so verification needs no second pass.
func (a *resolvedArtifact) download(ctx context.Context, staged string) error {
	//nolint:gosec // Path comes from the store's staging area
	f, err := os.OpenFile(staged, os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.Wrap(err, "failed to open staged file")
	}

	hash := sha256.New()
	if err := a.source.Fetch(ctx, a.spec.Repository, a.spec.Path, io.MultiWriter(f, hash)); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return zerr.Wrap(err, "failed to close staged file")
	}

	if a.spec.SHA256 != "" {
		actual := hex.EncodeToString(hash.Sum(nil))
		if actual != a.spec.SHA256 {
			err := zerr.With(domain.ErrChecksumMismatch, "expected", a.spec.SHA256)
			return zerr.With(err, "actual", actual)
		}
	}
	return nil
}
