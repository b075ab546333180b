package domain

import (
	"slices"
	"strings"
)

// attributePair is a single key/value entry of an attribute bag.
type attributePair struct {
	key   InternedString
	value InternedString
}

// Attributes is an immutable bag of variant attributes (e.g., os=linux,
// kind=release). Pairs are stored sorted by key, so two bags built from
// the same entries are structurally identical regardless of input order.
type Attributes struct {
	pairs []attributePair
}

// NewAttributes creates an attribute bag from a key/value map.
// Keys are sorted and both keys and values are interned.
func NewAttributes(kv map[string]string) Attributes {
	if len(kv) == 0 {
		return Attributes{}
	}
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]attributePair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, attributePair{
			key:   NewInternedString(k),
			value: NewInternedString(kv[k]),
		})
	}
	return Attributes{pairs: pairs}
}

// Get returns the value for key and whether the key is present.
func (a Attributes) Get(key string) (string, bool) {
	for _, p := range a.pairs {
		if p.key.String() == key {
			return p.value.String(), true
		}
	}
	return "", false
}

// Len returns the number of attributes in the bag.
func (a Attributes) Len() int {
	return len(a.pairs)
}

// Keys returns the attribute keys in sorted order.
func (a Attributes) Keys() []string {
	keys := make([]string, len(a.pairs))
	for i, p := range a.pairs {
		keys[i] = p.key.String()
	}
	return keys
}

// Equal reports whether two bags hold exactly the same entries.
// Interned handles make each pair comparison a pointer comparison.
func (a Attributes) Equal(other Attributes) bool {
	return slices.Equal(a.pairs, other.pairs)
}

// CanonicalKey returns a deterministic single-string encoding of the bag,
// suitable as a cache key. Bags that are Equal share one CanonicalKey.
func (a Attributes) CanonicalKey() string {
	var b strings.Builder
	for _, p := range a.pairs {
		b.WriteString(p.key.String())
		b.WriteString("=")
		b.WriteString(p.value.String())
		b.WriteString(";")
	}
	return b.String()
}

// String returns a human-readable "{k1=v1, k2=v2}" form for diagnostics.
func (a Attributes) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, p := range a.pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.key.String())
		b.WriteString("=")
		b.WriteString(p.value.String())
	}
	b.WriteString("}")
	return b.String()
}
