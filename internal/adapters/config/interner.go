package config

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/haul/internal/core/domain"
)

// attributeCacheSize bounds the interner. Variant attribute bags repeat
// heavily across modules, so the working set stays far below this.
const attributeCacheSize = 1024

// attributeInterner canonicalizes attribute bags so that equal bags share
// one backing instance across the whole manifest.
type attributeInterner struct {
	cache *lru.Cache[string, domain.Attributes]
}

func newAttributeInterner() (*attributeInterner, error) {
	cache, err := lru.New[string, domain.Attributes](attributeCacheSize)
	if err != nil {
		return nil, err
	}
	return &attributeInterner{cache: cache}, nil
}

// Intern returns the shared Attributes instance for the given key/value bag.
func (i *attributeInterner) Intern(kv map[string]string) domain.Attributes {
	attrs := domain.NewAttributes(kv)
	key := attrs.CanonicalKey()

	if cached, ok := i.cache.Get(key); ok {
		return cached
	}

	i.cache.Add(key, attrs)
	return attrs
}
