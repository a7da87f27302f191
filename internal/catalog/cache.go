package catalog

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/logger"
	"github.com/osse101/gachabox/internal/metrics"
	"github.com/osse101/gachabox/internal/repository"
)

// cacheEntry holds one of the three cached shapes
type cacheEntry struct {
	box   *domain.Box
	items []domain.Item
	boxes []domain.Box
}

// CachedCatalog is a read-through LRU cache in front of a repository.Catalog.
// The catalog only changes through seeding, so entries simply expire or are purged.
type CachedCatalog struct {
	next repository.Catalog
	lru  *expirable.LRU[string, cacheEntry]
}

// NewCachedCatalog wraps next with a cache of the given size and TTL
func NewCachedCatalog(next repository.Catalog, size int, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{
		next: next,
		lru:  expirable.NewLRU[string, cacheEntry](size, nil, ttl),
	}
}

func (c *CachedCatalog) lookup(key string) (cacheEntry, bool) {
	entry, ok := c.lru.Get(key)
	if ok {
		metrics.CatalogCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
	} else {
		metrics.CatalogCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
	}
	return entry, ok
}

// GetBox returns the box, loading it on a miss. Missing boxes are not cached.
func (c *CachedCatalog) GetBox(ctx context.Context, boxID string) (*domain.Box, error) {
	key := cacheKeyBoxPrefix + boxID
	if entry, ok := c.lookup(key); ok {
		return cloneBox(entry.box), nil
	}

	box, err := c.next.GetBox(ctx, boxID)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, cacheEntry{box: cloneBox(box)})
	return box, nil
}

// GetItemsByBox returns the ordered item pool of a box
func (c *CachedCatalog) GetItemsByBox(ctx context.Context, boxID string) ([]domain.Item, error) {
	key := cacheKeyItems + boxID
	if entry, ok := c.lookup(key); ok {
		return append([]domain.Item(nil), entry.items...), nil
	}

	items, err := c.next.GetItemsByBox(ctx, boxID)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, cacheEntry{items: append([]domain.Item(nil), items...)})
	return items, nil
}

// ListBoxes returns every box
func (c *CachedCatalog) ListBoxes(ctx context.Context) ([]domain.Box, error) {
	if entry, ok := c.lookup(cacheKeyBoxes); ok {
		return cloneBoxes(entry.boxes), nil
	}

	boxes, err := c.next.ListBoxes(ctx)
	if err != nil {
		return nil, err
	}
	c.lru.Add(cacheKeyBoxes, cacheEntry{boxes: cloneBoxes(boxes)})
	return boxes, nil
}

// Purge drops every cached entry, e.g. after reseeding
func (c *CachedCatalog) Purge(ctx context.Context) {
	c.lru.Purge()
	logger.FromContext(ctx).Info(LogMsgCachePurged)
}

// Len reports the number of cached entries
func (c *CachedCatalog) Len() int {
	return c.lru.Len()
}

func cloneBox(b *domain.Box) *domain.Box {
	if b == nil {
		return nil
	}
	out := *b
	out.ItemIDs = append([]string(nil), b.ItemIDs...)
	out.Items = append([]domain.Item(nil), b.Items...)
	return &out
}

func cloneBoxes(boxes []domain.Box) []domain.Box {
	out := make([]domain.Box, len(boxes))
	for i := range boxes {
		out[i] = *cloneBox(&boxes[i])
	}
	return out
}
