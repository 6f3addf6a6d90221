package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/courseforge/course-market/internal/core/domain"
)

const (
	catalogKey = "catalog:all"
	catalogTTL = 30 * time.Second
)

// CatalogCache caches the public course catalog in Redis. Entries
// expire after catalogTTL and are invalidated eagerly on any course
// mutation, so stale reads are bounded by the TTL even if an
// invalidation is lost.
type CatalogCache struct {
	client *redis.Client
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// Get returns the cached catalog and whether the cache was warm.
func (c *CatalogCache) Get(ctx context.Context) ([]*domain.Course, bool, error) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("catalog cache get: %w", err)
	}

	var courses []*domain.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		// A corrupt entry is treated as a miss; the next Set overwrites it.
		return nil, false, nil
	}
	return courses, true, nil
}

// Set stores the catalog with the cache TTL.
func (c *CatalogCache) Set(ctx context.Context, courses []*domain.Course) error {
	raw, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("catalog cache marshal: %w", err)
	}
	return c.client.Set(ctx, catalogKey, raw, catalogTTL).Err()
}

// Invalidate drops the cached catalog.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
