package cache

import (
	"context"
	"time"
)

// Prefix namespaces every key written by the catalog read paths.
const Prefix = "catalog:"

// Cache stores JSON encoded values. A miss is reported as (false, nil).
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Close() error
}

type nopCache struct{}

// NewNop returns a cache that never stores anything.
func NewNop() Cache { return nopCache{} }

func (nopCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

func (nopCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (nopCache) DeleteByPrefix(context.Context, string) error { return nil }

func (nopCache) Close() error { return nil }
