package postal

import (
	"context"
	"time"
)

// ConfigCache stores resolved tenant configuration views keyed by tenant
// subdomain. Implementations must be safe for concurrent use, bound both
// entry lifetime (sliding TTL) and entry count (LRU), and treat eviction of
// an absent key as a no-op.
//
// A cache stores values only: load failures are never cached, and a Get
// past a key's TTL is a miss, never a silent stale read.
type ConfigCache interface {
	// Get returns the cached view and whether it was present. A hit
	// refreshes the entry's age.
	Get(ctx context.Context, tenantKey string) (*ConfigurationView, bool, error)
	// Set stores a freshly built view under the tenant key.
	Set(ctx context.Context, tenantKey string, view *ConfigurationView) error
	// Evict removes one tenant's entry immediately, regardless of TTL.
	Evict(ctx context.Context, tenantKey string) error
	// EvictAll clears every entry. Used when a change's blast radius
	// cannot be cheaply enumerated.
	EvictAll(ctx context.Context) error
	Close() error
}

// CacheConfig holds tuning for ConfigCache implementations.
type CacheConfig struct {
	TTL             time.Duration
	Capacity        uint64
	CleanupInterval time.Duration
}

// DefaultCacheConfig returns the default cache tuning
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL:             5 * time.Minute,
		Capacity:        1000,
		CleanupInterval: 30 * time.Second,
	}
}
