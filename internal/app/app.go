// Package app implements the application layer for haul.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/haul/internal/core/ports"
	"go.trai.ch/haul/internal/engine/queue"
	"go.trai.ch/haul/internal/engine/resolve"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ManifestLoader
	sources   map[domain.RepositoryKind]ports.Source
	store     ports.FileStore
	hasher    ports.Hasher
	logger    ports.Logger
	tracer    ports.Tracer
	telemetry ports.Telemetry
	out       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	sources map[domain.RepositoryKind]ports.Source,
	store ports.FileStore,
	hasher ports.Hasher,
	log ports.Logger,
	tracer ports.Tracer,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:    loader,
		sources:   sources,
		store:     store,
		hasher:    hasher,
		logger:    log,
		tracer:    tracer,
		telemetry: telemetry,
		out:       os.Stdout,
	}
}

// WithOutput redirects report and listing output. Used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// FetchOptions configures one fetch cycle.
type FetchOptions struct {
	// Variants restricts the fetch to variants with these names.
	// Empty means every variant in the manifest.
	Variants []string

	// Parallelism bounds concurrent fetch operations. Zero or negative
	// means one worker per CPU.
	Parallelism int
}

// Fetch materializes the selected variants' artifacts: schedule every
// fetch onto the queue, drain it, then report per-artifact outcomes.
// One failing artifact never aborts its siblings; it surfaces in the
// report and through the returned ErrFetchFailed.
func (a *App) Fetch(ctx context.Context, opts FetchOptions) error {
	ctx, span := a.tracer.Start(ctx, "Fetch")
	defer span.End()

	set, err := a.resolveSet(opts.Variants)
	if err != nil {
		return err
	}

	artifacts := len(set.Artifacts())
	span.SetAttribute("haul.artifacts", artifacts)
	a.logger.Info(fmt.Sprintf("Fetching %d artifacts", artifacts))

	q := queue.New(a.tracer, a.telemetry, opts.Parallelism)
	report := NewReport(ctx, a.hasher)

	if err := resolve.MaterializeAll(ctx, q, set, report); err != nil {
		return zerr.Wrap(err, "fetch cycle interrupted")
	}

	if _, err := io.WriteString(a.out, report.Render()); err != nil {
		return zerr.Wrap(err, "failed to write fetch report")
	}

	if failed := report.Failed(); failed > 0 {
		return zerr.With(domain.ErrFetchFailed, "failed_artifacts", failed)
	}
	return nil
}

// List prints the selected variants' artifact identities without
// materializing anything. The listing visitor does not require files,
// so no fetch work is ever scheduled.
func (a *App) List(ctx context.Context, variants []string) error {
	_, span := a.tracer.Start(ctx, "List")
	defer span.End()

	set, err := a.resolveSet(variants)
	if err != nil {
		return err
	}

	set.Visit(&listingVisitor{out: a.out})
	return nil
}

// Deps prints the build tasks backing the selected variants' artifacts,
// deduplicated and sorted. Pure metadata; nothing is materialized.
func (a *App) Deps(ctx context.Context, variants []string) error {
	_, span := a.tracer.Start(ctx, "Deps")
	defer span.End()

	set, err := a.resolveSet(variants)
	if err != nil {
		return err
	}

	var refs []domain.TaskRef
	set.CollectBuildDependencies(&refs)

	seen := make(map[domain.TaskRef]struct{}, len(refs))
	paths := make([]string, 0, len(refs))
	for _, ref := range refs {
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		paths = append(paths, ref.String())
	}
	slices.Sort(paths)

	for _, path := range paths {
		if _, err := fmt.Fprintln(a.out, path); err != nil {
			return zerr.Wrap(err, "failed to write dependency listing")
		}
	}
	return nil
}

// resolveSet loads the manifest and composes the artifact sets of every
// selected variant into one resolution-wide set.
func (a *App) resolveSet(variants []string) (resolve.ArtifactSet, error) {
	manifest, err := a.loader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	sets, err := a.assemble(manifest, variants)
	if err != nil {
		return nil, err
	}
	return resolve.Compose(sets), nil
}
