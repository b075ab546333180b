package domain_test

import (
	"testing"

	"go.trai.ch/haul/internal/core/domain"
)

func TestAttributesGet(t *testing.T) {
	attrs := domain.NewAttributes(map[string]string{
		"os":   "linux",
		"kind": "release",
	})

	if v, ok := attrs.Get("os"); !ok || v != "linux" {
		t.Errorf("Expected os=linux to be present, got %q (present=%v)", v, ok)
	}
	if _, ok := attrs.Get("arch"); ok {
		t.Errorf("Expected missing key to report absent")
	}
	if attrs.Len() != 2 {
		t.Errorf("Expected 2 attributes, got %d", attrs.Len())
	}
}

func TestAttributesOrderIndependence(t *testing.T) {
	a := domain.NewAttributes(map[string]string{"os": "linux", "kind": "release", "arch": "amd64"})
	b := domain.NewAttributes(map[string]string{"arch": "amd64", "kind": "release", "os": "linux"})

	if !a.Equal(b) {
		t.Errorf("Expected bags built from the same entries to be equal")
	}
	if a.CanonicalKey() != b.CanonicalKey() {
		t.Errorf("Expected identical canonical keys, got %q and %q", a.CanonicalKey(), b.CanonicalKey())
	}
}

func TestAttributesNotEqual(t *testing.T) {
	a := domain.NewAttributes(map[string]string{"os": "linux"})
	b := domain.NewAttributes(map[string]string{"os": "darwin"})
	c := domain.NewAttributes(map[string]string{"os": "linux", "kind": "release"})

	if a.Equal(b) {
		t.Errorf("Expected differing values to compare unequal")
	}
	if a.Equal(c) {
		t.Errorf("Expected differing sizes to compare unequal")
	}
}

func TestAttributesKeysSorted(t *testing.T) {
	attrs := domain.NewAttributes(map[string]string{"os": "linux", "arch": "amd64", "kind": "release"})

	keys := attrs.Keys()
	want := []string{"arch", "kind", "os"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Expected key %q at index %d, got %q", want[i], i, keys[i])
		}
	}
}

func TestAttributesString(t *testing.T) {
	attrs := domain.NewAttributes(map[string]string{"os": "linux", "kind": "release"})

	want := "{kind=release, os=linux}"
	if got := attrs.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	var empty domain.Attributes
	if got := empty.String(); got != "{}" {
		t.Errorf("Expected empty bag to render as {}, got %q", got)
	}
}
