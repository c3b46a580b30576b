package cache

import (
	"context"
	"sync/atomic"

	"github.com/jellydator/ttlcache/v3"
	"github.com/postalis/backend/internal/domain/postal"
	"go.uber.org/zap"
)

// InMemoryConfigCache implements postal.ConfigCache on top of a TTL+LRU
// store. Entries live for a sliding TTL (a hit refreshes the age) and the
// resident entry count is capacity-bounded; the least recently used tenant
// is dropped first under size pressure.
//
// Only successfully built views are ever stored, so a load failure can
// never be served from here.
type InMemoryConfigCache struct {
	views  *ttlcache.Cache[string, *postal.ConfigurationView]
	config postal.CacheConfig
	logger *zap.Logger

	// Stats for monitoring
	hits   int64
	misses int64
}

// InMemoryConfigCacheOption is a functional option for configuring the cache
type InMemoryConfigCacheOption func(*InMemoryConfigCache)

// WithInMemoryConfig sets the cache configuration
func WithInMemoryConfig(config postal.CacheConfig) InMemoryConfigCacheOption {
	return func(c *InMemoryConfigCache) {
		c.config = config
	}
}

// WithInMemoryLogger sets the logger for the cache
func WithInMemoryLogger(logger *zap.Logger) InMemoryConfigCacheOption {
	return func(c *InMemoryConfigCache) {
		c.logger = logger
	}
}

// NewInMemoryConfigCache creates a new in-memory tenant configuration cache
func NewInMemoryConfigCache(opts ...InMemoryConfigCacheOption) *InMemoryConfigCache {
	c := &InMemoryConfigCache{
		config: postal.DefaultCacheConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.views = ttlcache.New[string, *postal.ConfigurationView](
		ttlcache.WithTTL[string, *postal.ConfigurationView](c.config.TTL),
		ttlcache.WithCapacity[string, *postal.ConfigurationView](c.config.Capacity),
	)

	// Background sweep of expired entries; non-blocking for readers.
	go c.views.Start()

	return c
}

// Get returns the cached view for a tenant key. A hit refreshes the
// entry's TTL so actively used tenants outlive idle ones.
func (c *InMemoryConfigCache) Get(ctx context.Context, tenantKey string) (*postal.ConfigurationView, bool, error) {
	item := c.views.Get(tenantKey)
	if item == nil {
		atomic.AddInt64(&c.misses, 1)
		c.logger.Debug("tenant config cache miss", zap.String("tenant", tenantKey))
		return nil, false, nil
	}

	atomic.AddInt64(&c.hits, 1)
	c.logger.Debug("tenant config cache hit", zap.String("tenant", tenantKey))
	return item.Value(), true, nil
}

// Set stores a freshly built view. An in-flight rebuild racing with another
// for the same key is resolved last-write-wins; the stored value is always
// one complete view, never a blend.
func (c *InMemoryConfigCache) Set(ctx context.Context, tenantKey string, view *postal.ConfigurationView) error {
	if view == nil {
		return nil
	}
	c.views.Set(tenantKey, view, ttlcache.DefaultTTL)
	c.logger.Debug("cached tenant config", zap.String("tenant", tenantKey))
	return nil
}

// Evict removes one tenant's entry. Evicting an absent key is a no-op.
func (c *InMemoryConfigCache) Evict(ctx context.Context, tenantKey string) error {
	c.views.Delete(tenantKey)
	c.logger.Debug("evicted tenant config", zap.String("tenant", tenantKey))
	return nil
}

// EvictAll clears every tenant entry
func (c *InMemoryConfigCache) EvictAll(ctx context.Context) error {
	c.views.DeleteAll()
	c.logger.Info("evicted all tenant configs")
	return nil
}

// Close stops the background sweep
func (c *InMemoryConfigCache) Close() error {
	c.views.Stop()
	return nil
}

// Stats returns hit/miss counters
func (c *InMemoryConfigCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Len returns the number of resident entries
func (c *InMemoryConfigCache) Len() int {
	return c.views.Len()
}

// Ensure InMemoryConfigCache implements postal.ConfigCache
var _ postal.ConfigCache = (*InMemoryConfigCache)(nil)
