package cache

import (
	"testing"
	"time"

	"github.com/postalis/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCacheFactoryCreateCache(t *testing.T) {
	baseCfg := config.CacheConfig{
		Backend:         "memory",
		TTL:             time.Minute,
		Capacity:        16,
		CleanupInterval: time.Minute,
	}
	// Port 1 refuses connections, so the Redis ping fails immediately.
	deadRedis := config.RedisConfig{Host: "127.0.0.1", Port: 1}

	t.Run("memory backend", func(t *testing.T) {
		cache, err := NewConfigCacheFactory(baseCfg, config.RedisConfig{}).CreateCache()
		require.NoError(t, err)
		t.Cleanup(func() { _ = cache.Close() })
		assert.IsType(t, &InMemoryConfigCache{}, cache)
	})

	t.Run("unreachable redis falls back to memory", func(t *testing.T) {
		cfg := baseCfg
		cfg.Backend = "redis"
		cache, err := NewConfigCacheFactory(cfg, deadRedis).CreateCache()
		require.NoError(t, err)
		t.Cleanup(func() { _ = cache.Close() })
		assert.IsType(t, &InMemoryConfigCache{}, cache)
	})

	t.Run("unreachable redis without fallback fails", func(t *testing.T) {
		cfg := baseCfg
		cfg.Backend = "redis"
		_, err := NewConfigCacheFactory(cfg, deadRedis, WithInMemoryFallback(false)).CreateCache()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Redis")
	})

	t.Run("unknown backend is rejected", func(t *testing.T) {
		cfg := baseCfg
		cfg.Backend = "memcached"
		_, err := NewConfigCacheFactory(cfg, config.RedisConfig{}).CreateCache()
		assert.Error(t, err)
	})
}
