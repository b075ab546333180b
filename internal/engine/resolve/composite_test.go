package resolve_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/haul/internal/core/ports"
	"go.trai.ch/haul/internal/engine/resolve"
)

func TestCompose_Nothing(t *testing.T) {
	if got := resolve.Compose(nil); got != resolve.Empty {
		t.Error("composing nothing should yield Empty")
	}
	if got := resolve.Compose([]resolve.ArtifactSet{resolve.Empty, resolve.Empty}); got != resolve.Empty {
		t.Error("composing only empties should yield Empty")
	}
}

func TestCompose_SingleSurvivorReturnedAsIs(t *testing.T) {
	inner := resolve.ForVariant(testAttrs(), []ports.Artifact{newFakeArtifact("engine")})
	got := resolve.Compose([]resolve.ArtifactSet{resolve.Empty, inner, resolve.Empty})
	if got != inner {
		t.Error("a single surviving member should be returned unwrapped")
	}
}

func TestCompose_InlinesNestedComposites(t *testing.T) {
	a := resolve.ForVariant(testAttrs(), []ports.Artifact{newFakeArtifact("a")})
	b := resolve.ForVariant(testAttrs(), []ports.Artifact{newFakeArtifact("b")})
	c := resolve.ForVariant(testAttrs(), []ports.Artifact{newFakeArtifact("c")})

	nested := resolve.Compose([]resolve.ArtifactSet{a, b})
	flat := resolve.Compose([]resolve.ArtifactSet{nested, c})

	arts := flat.Artifacts()
	if len(arts) != 3 {
		t.Fatalf("expected three artifacts, got %d", len(arts))
	}

	v := &recordingVisitor{requiresFiles: true}
	flat.Visit(v)
	if !slices.Equal(v.events, []string{"ok:a", "ok:b", "ok:c"}) {
		t.Errorf("expected member order preserved, got %v", v.events)
	}
}

func TestCompose_VisitsMembersInOrder(t *testing.T) {
	runtime := resolve.ForVariant(
		domain.NewAttributes(map[string]string{"usage": "runtime"}),
		[]ports.Artifact{newFakeArtifact("core"), newFakeArtifact("native")},
	)
	docs := resolve.ForVariant(
		domain.NewAttributes(map[string]string{"usage": "docs"}),
		[]ports.Artifact{newFakeArtifact("javadoc")},
	)

	set := resolve.Compose([]resolve.ArtifactSet{runtime, docs})
	v := &recordingVisitor{requiresFiles: true}
	set.Visit(v)

	if !slices.Equal(v.events, []string{"ok:core", "ok:native", "ok:javadoc"}) {
		t.Errorf("unexpected events: %v", v.events)
	}
	if got, ok := v.variants[2].Get("usage"); !ok || got != "docs" {
		t.Errorf("expected the member's own attributes, got usage=%q", got)
	}
}

func TestCompose_FailureStaysWithOwningMember(t *testing.T) {
	// A failed fetch in one member must not leak into its siblings.
	broken := newFakeArtifact("native")
	broken.fileErr = errors.New("no such object")

	first := resolve.ForVariant(testAttrs(), []ports.Artifact{newFakeArtifact("core"), broken})
	second := resolve.ForVariant(testAttrs(), []ports.Artifact{newFakeArtifact("docs")})
	set := resolve.Compose([]resolve.ArtifactSet{first, second})

	q := &captureQueue{}
	v := &recordingVisitor{requiresFiles: true}
	set.AddPrepareActions(q, v)
	if len(q.ops) != 3 {
		t.Fatalf("expected three operations across members, got %d", len(q.ops))
	}
	q.runAll(context.Background())

	set.Visit(v)
	if !slices.Equal(v.events, []string{"ok:core", "fail", "ok:docs"}) {
		t.Errorf("unexpected events: %v", v.events)
	}
}

func TestCompose_CollectsBuildDependenciesAcrossMembers(t *testing.T) {
	a := newFakeArtifact("engine")
	a.builtBy = []domain.TaskRef{domain.NewTaskRef("core", "jar")}
	b := newFakeArtifact("docs")
	b.builtBy = []domain.TaskRef{domain.NewTaskRef("docs", "javadoc")}

	set := resolve.Compose([]resolve.ArtifactSet{
		resolve.ForVariant(testAttrs(), []ports.Artifact{a}),
		resolve.ForVariant(testAttrs(), []ports.Artifact{b}),
	})

	var dest []domain.TaskRef
	set.CollectBuildDependencies(&dest)
	want := []domain.TaskRef{
		domain.NewTaskRef("core", "jar"),
		domain.NewTaskRef("docs", "javadoc"),
	}
	if !slices.Equal(dest, want) {
		t.Errorf("expected %v, got %v", want, dest)
	}
}
