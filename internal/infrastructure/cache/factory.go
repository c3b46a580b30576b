package cache

import (
	"fmt"

	"github.com/postalis/backend/internal/domain/postal"
	"github.com/postalis/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConfigCacheFactory creates tenant configuration caches based on
// configuration.
type ConfigCacheFactory struct {
	cacheConfig           config.CacheConfig
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// ConfigCacheFactoryOption is a functional option for configuring the factory
type ConfigCacheFactoryOption func(*ConfigCacheFactory)

// WithLogger sets the logger for the factory and the caches it creates
func WithLogger(logger *zap.Logger) ConfigCacheFactoryOption {
	return func(f *ConfigCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory cache
// when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) ConfigCacheFactoryOption {
	return func(f *ConfigCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewConfigCacheFactory creates a new factory
func NewConfigCacheFactory(cacheCfg config.CacheConfig, redisCfg config.RedisConfig, opts ...ConfigCacheFactoryOption) *ConfigCacheFactory {
	f := &ConfigCacheFactory{
		cacheConfig:           cacheCfg,
		redisConfig:           redisCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateCache creates the cache named by the configured backend. A Redis
// backend that cannot be reached falls back to the in-memory cache when
// fallback is allowed; single-instance deployments lose nothing by it.
func (f *ConfigCacheFactory) CreateCache() (postal.ConfigCache, error) {
	switch f.cacheConfig.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     f.redisConfig.Addr(),
			Password: f.redisConfig.Password,
			DB:       f.redisConfig.DB,
		})
		cache, err := NewRedisConfigCache(client, f.cacheConfig.KeyPrefix, f.cacheConfig.TTL, f.logger)
		if err == nil {
			return cache, nil
		}
		if closeErr := client.Close(); closeErr != nil {
			f.logger.Warn("Failed to close unused Redis client", zap.Error(closeErr))
		}
		if !f.allowInMemoryFallback {
			return nil, fmt.Errorf("failed to create Redis config cache: %w", err)
		}
		f.logger.Warn("Redis unavailable, falling back to in-memory tenant config cache",
			zap.Error(err))
		fallthrough
	case "memory":
		return f.createInMemory(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", f.cacheConfig.Backend)
	}
}

func (f *ConfigCacheFactory) createInMemory() postal.ConfigCache {
	return NewInMemoryConfigCache(
		WithInMemoryConfig(postal.CacheConfig{
			TTL:             f.cacheConfig.TTL,
			Capacity:        uint64(f.cacheConfig.Capacity),
			CleanupInterval: f.cacheConfig.CleanupInterval,
		}),
		WithInMemoryLogger(f.logger),
	)
}
