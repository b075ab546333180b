package domain_test

import (
	"testing"

	"go.trai.ch/haul/internal/core/domain"
)

func TestComponentRefString(t *testing.T) {
	ref := domain.NewComponentRef("org.example", "engine", "2.1.0")

	if got := ref.String(); got != "org.example:engine:2.1.0" {
		t.Errorf("Expected coordinates %q, got %q", "org.example:engine:2.1.0", got)
	}
}

func TestArtifactIDFileName(t *testing.T) {
	component := domain.NewComponentRef("org.example", "engine", "2.1.0")

	tests := []struct {
		name       string
		classifier string
		extension  string
		want       string
	}{
		{name: "main artifact", classifier: "", extension: "jar", want: "engine.jar"},
		{name: "classified artifact", classifier: "sources", extension: "jar", want: "engine-sources.jar"},
		{name: "compound extension", classifier: "linux-amd64", extension: "tar.gz", want: "engine-linux-amd64.tar.gz"},
		{name: "no extension", classifier: "", extension: "", want: "engine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := domain.ArtifactID{
				Component:  component,
				Name:       domain.NewInternedString("engine"),
				Classifier: domain.NewInternedString(tt.classifier),
				Extension:  domain.NewInternedString(tt.extension),
			}
			if got := id.FileName(); got != tt.want {
				t.Errorf("Expected file name %q, got %q", tt.want, got)
			}
		})
	}
}

func TestArtifactIDString(t *testing.T) {
	id := domain.ArtifactID{
		Component:  domain.NewComponentRef("org.example", "engine", "2.1.0"),
		Name:       domain.NewInternedString("engine"),
		Classifier: domain.NewInternedString("sources"),
		Extension:  domain.NewInternedString("jar"),
	}

	want := "engine-sources.jar (org.example:engine:2.1.0)"
	if got := id.String(); got != want {
		t.Errorf("Expected display form %q, got %q", want, got)
	}
}

func TestArtifactIDAsMapKey(t *testing.T) {
	mk := func() domain.ArtifactID {
		return domain.ArtifactID{
			Component: domain.NewComponentRef("org.example", "engine", "2.1.0"),
			Name:      domain.NewInternedString("engine"),
			Extension: domain.NewInternedString("jar"),
		}
	}

	seen := map[domain.ArtifactID]int{}
	seen[mk()]++
	seen[mk()]++

	// Structurally equal IDs must collapse to one key.
	if len(seen) != 1 {
		t.Fatalf("Expected one distinct key, got %d", len(seen))
	}
	if seen[mk()] != 2 {
		t.Errorf("Expected count 2 for the shared key, got %d", seen[mk()])
	}

	other := mk()
	other.Classifier = domain.NewInternedString("sources")
	seen[other]++
	if len(seen) != 2 {
		t.Errorf("Expected classifier to distinguish keys, got %d distinct keys", len(seen))
	}
}
