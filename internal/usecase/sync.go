package usecase

import (
	"context"
	"fmt"
	"sync/atomic"

	"catalog_service/internal/cache"
	"catalog_service/internal/events"

	"github.com/sirupsen/logrus"
)

// Notifier keeps the read cache and the event stream in step with writes.
// Neither side can fail a request: problems are logged and dropped.
type Notifier struct {
	cache     cache.Cache
	publisher events.Publisher
	log       *logrus.Logger

	// generation is bumped before every purge. A read whose load overlapped a
	// purge must not store its result.
	generation atomic.Uint64
}

func NewNotifier(c cache.Cache, publisher events.Publisher, logger *logrus.Logger) *Notifier {
	if c == nil {
		c = cache.NewNop()
	}
	if publisher == nil {
		publisher = events.NewNop()
	}
	return &Notifier{cache: c, publisher: publisher, log: logger}
}

// Changed purges every cached read and publishes event.
func (n *Notifier) Changed(ctx context.Context, event events.Event) {
	n.generation.Add(1)
	if err := n.cache.DeleteByPrefix(ctx, cache.Prefix); err != nil {
		n.log.Warnf("Use Case: Failed to purge cache after %s: %v", event.Type, err)
	}
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.log.Warnf("Use Case: Failed to publish %s for ID %d: %v", event.Type, event.ID, err)
	}
}

func cacheKey(resource string, id ...int) string {
	if len(id) == 0 {
		return cache.Prefix + resource
	}
	return fmt.Sprintf("%s%s:%d", cache.Prefix, resource, id[0])
}

// readThrough serves key from the cache, falling back to load and storing
// its result.
func readThrough[T any](ctx context.Context, n *Notifier, key string, load func(context.Context) (T, error)) (T, error) {
	var cached T
	found, err := n.cache.Get(ctx, key, &cached)
	if err != nil {
		n.log.Warnf("Use Case: Cache read for %s failed: %v", key, err)
	} else if found {
		n.log.Debugf("Use Case: Cache hit for %s", key)
		return cached, nil
	}

	generation := n.generation.Load()
	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	if n.generation.Load() != generation {
		n.log.Debugf("Use Case: Not caching %s, catalog changed during load", key)
		return value, nil
	}
	if err := n.cache.Set(ctx, key, value, 0); err != nil {
		n.log.Warnf("Use Case: Cache write for %s failed: %v", key, err)
	}
	// A purge may have slipped in between the check and the write.
	if n.generation.Load() != generation {
		if err := n.cache.DeleteByPrefix(ctx, key); err != nil {
			n.log.Warnf("Use Case: Failed to drop stale cache entry %s: %v", key, err)
		}
	}
	return value, nil
}
