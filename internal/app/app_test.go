package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/haul/internal/adapters/telemetry"
	"go.trai.ch/haul/internal/adapters/telemetry/progrock"
	"go.trai.ch/haul/internal/app"
	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/haul/internal/core/ports"
	"go.trai.ch/haul/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// testManifest declares one http repository and one component with a
// fetchable "runtime" variant and a locally built "docs" variant.
func testManifest() *domain.Manifest {
	central := domain.Repository{
		Name:     domain.NewInternedString("central"),
		Kind:     domain.RepositoryKindHTTP,
		Endpoint: domain.NewInternedString("https://repo.example.com"),
	}

	return &domain.Manifest{
		Version:      1,
		Repositories: map[string]domain.Repository{"central": central},
		Modules: []domain.Module{
			{
				Component: domain.NewComponentRef("org.example", "engine", "2.1.0"),
				Variants: []domain.Variant{
					{
						Name:       domain.NewInternedString("runtime"),
						Attributes: domain.NewAttributes(map[string]string{"usage": "runtime"}),
						Artifacts: []domain.ArtifactSpec{
							{
								Name:       domain.NewInternedString("engine"),
								Extension:  domain.NewInternedString("jar"),
								Repository: domain.NewInternedString("central"),
								Path:       domain.NewInternedString("org/example/engine/2.1.0/engine.jar"),
							},
							{
								Name:       domain.NewInternedString("engine"),
								Classifier: domain.NewInternedString("sources"),
								Extension:  domain.NewInternedString("jar"),
								Repository: domain.NewInternedString("central"),
								Path:       domain.NewInternedString("org/example/engine/2.1.0/engine-sources.jar"),
							},
						},
					},
					{
						Name:       domain.NewInternedString("docs"),
						Attributes: domain.NewAttributes(map[string]string{"usage": "docs"}),
						Artifacts: []domain.ArtifactSpec{
							{
								Name:       domain.NewInternedString("engine"),
								Classifier: domain.NewInternedString("docs"),
								Extension:  domain.NewInternedString("zip"),
								Repository: domain.NewInternedString("central"),
								Path:       domain.NewInternedString("org/example/engine/2.1.0/engine-docs.zip"),
								BuiltBy:    []domain.TaskRef{domain.NewTaskRef("engine", "package")},
							},
						},
					},
				},
			},
		},
	}
}

type appMocks struct {
	loader *mocks.MockManifestLoader
	source *mocks.MockSource
	store  *mocks.MockFileStore
	hasher *mocks.MockHasher
	logger *mocks.MockLogger
}

func newTestApp(t *testing.T, out io.Writer) (*app.App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := appMocks{
		loader: mocks.NewMockManifestLoader(ctrl),
		source: mocks.NewMockSource(ctrl),
		store:  mocks.NewMockFileStore(ctrl),
		hasher: mocks.NewMockHasher(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}

	sources := map[domain.RepositoryKind]ports.Source{
		domain.RepositoryKindHTTP: m.source,
	}

	a := app.New(m.loader, sources, m.store, m.hasher, m.logger,
		telemetry.NewNoOpTracer(), progrock.New()).WithOutput(out)
	return a, m
}

// expectStaging makes Stage hand out real empty temp files so the
// download path can open them.
func expectStaging(t *testing.T, m appMocks, times int) {
	t.Helper()
	dir := t.TempDir()
	m.store.EXPECT().Stage(gomock.Any()).DoAndReturn(func(domain.ArtifactID) (string, error) {
		f, err := os.CreateTemp(dir, "staged-*")
		require.NoError(t, err)
		require.NoError(t, f.Close())
		return f.Name(), nil
	}).Times(times)
}

func TestApp_Fetch_AllArtifactsSucceed(t *testing.T) {
	out := &bytes.Buffer{}
	a, m := newTestApp(t, out)

	m.loader.EXPECT().Load(".").Return(testManifest(), nil)
	m.logger.EXPECT().Info(gomock.Any())
	expectStaging(t, m, 2)
	m.source.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Repository, _ string, dst io.Writer) error {
			_, err := dst.Write([]byte("payload"))
			return err
		}).Times(2)
	m.store.EXPECT().Commit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ domain.ArtifactID, staged string) (string, error) {
			return staged, nil
		}).Times(2)
	m.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp123", nil).Times(2)

	err := a.Fetch(context.Background(), app.FetchOptions{Variants: []string{"runtime"}, Parallelism: 2})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Fetched 2 of 2 artifacts")
	assert.Contains(t, out.String(), "engine.jar (org.example:engine:2.1.0)")
	assert.Contains(t, out.String(), "engine-sources.jar (org.example:engine:2.1.0)")
	assert.Contains(t, out.String(), "fp123")
	assert.NotContains(t, out.String(), "FAIL")
}

func TestApp_Fetch_OneFailureDoesNotAbortSiblings(t *testing.T) {
	out := &bytes.Buffer{}
	a, m := newTestApp(t, out)

	m.loader.EXPECT().Load(".").Return(testManifest(), nil)
	m.logger.EXPECT().Info(gomock.Any())
	expectStaging(t, m, 2)
	m.source.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Repository, path string, dst io.Writer) error {
			if strings.Contains(path, "sources") {
				return domain.ErrArtifactNotFound
			}
			_, err := dst.Write([]byte("payload"))
			return err
		}).Times(2)
	m.store.EXPECT().Discard(gomock.Any()).Return(nil)
	m.store.EXPECT().Commit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ domain.ArtifactID, staged string) (string, error) {
			return staged, nil
		})
	m.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp123", nil)

	err := a.Fetch(context.Background(), app.FetchOptions{Variants: []string{"runtime"}})

	require.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Contains(t, out.String(), "Fetched 1 of 2 artifacts")
	assert.Contains(t, out.String(), "FAIL")
	assert.Contains(t, out.String(), "artifact not found")
}

func TestApp_List_SchedulesNothing(t *testing.T) {
	out := &bytes.Buffer{}
	a, m := newTestApp(t, out)

	// Only the loader may be touched: the listing visitor does not
	// require files, so no staging, fetching or hashing happens.
	m.loader.EXPECT().Load(".").Return(testManifest(), nil)

	err := a.List(context.Background(), nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "engine.jar (org.example:engine:2.1.0) {usage=runtime}")
	assert.Contains(t, out.String(), "engine-sources.jar (org.example:engine:2.1.0) {usage=runtime}")
	assert.Contains(t, out.String(), "engine-docs.zip (org.example:engine:2.1.0) {usage=docs}")
}

func TestApp_Deps_PrintsSortedTaskPaths(t *testing.T) {
	out := &bytes.Buffer{}
	a, m := newTestApp(t, out)

	m.loader.EXPECT().Load(".").Return(testManifest(), nil)

	err := a.Deps(context.Background(), []string{"docs"})

	require.NoError(t, err)
	assert.Equal(t, ":engine:package\n", out.String())
}

func TestApp_UnknownVariant(t *testing.T) {
	a, m := newTestApp(t, io.Discard)

	m.loader.EXPECT().Load(".").Return(testManifest(), nil)

	err := a.Fetch(context.Background(), app.FetchOptions{Variants: []string{"native"}})

	require.ErrorIs(t, err, domain.ErrUnknownVariant)
}

func TestApp_Fetch_LoaderError(t *testing.T) {
	a, m := newTestApp(t, io.Discard)

	loadErr := errors.New("no manifest here")
	m.loader.EXPECT().Load(".").Return(nil, loadErr)

	err := a.Fetch(context.Background(), app.FetchOptions{})

	require.ErrorIs(t, err, loadErr)
}
