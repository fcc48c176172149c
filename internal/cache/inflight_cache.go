package cache

import (
	"time"

	"github.com/codecraftpakistan/codecraft-site/pkg/logger"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// InFlightCache tracks submissions whose notification call is outstanding.
// Entries expire after ttl so a call that never returns cannot block its form forever.
type InFlightCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewInFlightCache creates a new in-flight submission cache
func NewInFlightCache(ttl time.Duration) *InFlightCache {
	return &InFlightCache{
		cache: gocache.New(ttl, ttl),
		ttl:   ttl,
	}
}

// Acquire marks key as in flight. It returns false when key is already held.
func (c *InFlightCache) Acquire(key string) bool {
	if err := c.cache.Add(key, time.Now(), c.ttl); err != nil {
		logger.Debug("Submission already in flight", zap.String("key", key))
		return false
	}
	return true
}

// Release frees key so the same form can be submitted again
func (c *InFlightCache) Release(key string) {
	c.cache.Delete(key)
}

// Len returns the number of submissions currently in flight
func (c *InFlightCache) Len() int {
	return c.cache.ItemCount()
}
