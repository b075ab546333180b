package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/haul/internal/core/ports"
)

// Report is the fetch visitor: it requires artifact files and records
// one outcome per artifact in visit order. Render turns the recorded
// outcomes into the text report the fetch command prints.
type Report struct {
	ctx    context.Context
	hasher ports.Hasher

	results []fetchResult
	failed  int
}

type fetchResult struct {
	variant     domain.Attributes
	id          domain.ArtifactID
	path        string
	fingerprint string
	err         error
}

// NewReport creates a Report. The context is the fetch cycle's context;
// visited artifacts replay their memoized materialization under it.
func NewReport(ctx context.Context, hasher ports.Hasher) *Report {
	return &Report{
		ctx:    ctx,
		hasher: hasher,
	}
}

// RequiresArtifactFiles reports that fetching needs materialized files.
func (r *Report) RequiresArtifactFiles() bool {
	return true
}

// VisitArtifact records a materialized artifact with its landed path and
// content fingerprint.
func (r *Report) VisitArtifact(variant domain.Attributes, artifact ports.Artifact) {
	result := fetchResult{
		variant: variant,
		id:      artifact.ID(),
	}

	// Materialization already ran on the queue; this replays the
	// memoized outcome.
	path, err := artifact.File(r.ctx)
	if err != nil {
		result.err = err
		r.failed++
		r.results = append(r.results, result)
		return
	}
	result.path = path

	if fingerprint, err := r.hasher.Fingerprint(path); err == nil {
		result.fingerprint = fingerprint
	}

	r.results = append(r.results, result)
}

// VisitFailure records a failed artifact.
func (r *Report) VisitFailure(err error) {
	r.failed++
	r.results = append(r.results, fetchResult{err: err})
}

// Failed returns the number of artifacts that failed to materialize.
func (r *Report) Failed() int {
	return r.failed
}

// Render returns the report text, one line per artifact in visit order.
func (r *Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fetched %d of %d artifacts\n", len(r.results)-r.failed, len(r.results))

	for _, result := range r.results {
		if result.err != nil {
			fmt.Fprintf(&b, "  FAIL %s\n", result.err.Error())
			continue
		}
		fmt.Fprintf(&b, "  ok   %s %s %s %s\n",
			result.id.String(), result.variant.String(), result.fingerprint, result.path)
	}
	return b.String()
}

// listingVisitor prints artifact identities without requiring files, so
// visiting with it schedules no fetch work at all.
type listingVisitor struct {
	out io.Writer
}

func (l *listingVisitor) RequiresArtifactFiles() bool {
	return false
}

func (l *listingVisitor) VisitArtifact(variant domain.Attributes, artifact ports.Artifact) {
	_, _ = fmt.Fprintf(l.out, "%s %s\n", artifact.ID().String(), variant.String())
}

// VisitFailure is unreachable for a visitor that never required files;
// kept printing for safety.
func (l *listingVisitor) VisitFailure(err error) {
	_, _ = fmt.Fprintf(l.out, "FAIL %s\n", err.Error())
}
