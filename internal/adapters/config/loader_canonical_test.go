//nolint:testpackage // Exercises the unexported attribute interner directly.
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeInterner_SharesEqualBags(t *testing.T) {
	interner, err := newAttributeInterner()
	require.NoError(t, err)

	first := interner.Intern(map[string]string{"usage": "runtime", "os": "linux"})
	second := interner.Intern(map[string]string{"os": "linux", "usage": "runtime"})

	assert.True(t, first.Equal(second))
	assert.Equal(t, 1, interner.cache.Len(), "equal bags should hit the same cache entry")
}

func TestAttributeInterner_DistinctBags(t *testing.T) {
	interner, err := newAttributeInterner()
	require.NoError(t, err)

	runtime := interner.Intern(map[string]string{"usage": "runtime"})
	sources := interner.Intern(map[string]string{"usage": "sources"})

	assert.False(t, runtime.Equal(sources))
	assert.Equal(t, 2, interner.cache.Len())
}

func TestAttributeInterner_CanonicalOrder(t *testing.T) {
	interner, err := newAttributeInterner()
	require.NoError(t, err)

	attrs := interner.Intern(map[string]string{"c": "3", "a": "1", "b": "2"})

	assert.Equal(t, []string{"a", "b", "c"}, attrs.Keys())
}
