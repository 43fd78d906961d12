package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRUCache is a process-local cache bounded by entry count and TTL.
type LRUCache struct {
	inner *expirable.LRU[string, []byte]
}

func NewLRUCache(size int, ttl time.Duration) *LRUCache {
	return &LRUCache{inner: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (c *LRUCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.inner.Get(key)
	return v, ok, nil
}

func (c *LRUCache) Set(_ context.Context, key string, value []byte) error {
	c.inner.Add(key, value)
	return nil
}

type NoopCache struct{}

func (NoopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NoopCache) Set(context.Context, string, []byte) error         { return nil }
