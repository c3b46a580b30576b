package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/postalis/backend/internal/domain/postal"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisConfigCache implements postal.ConfigCache on Redis. It is suitable
// for distributed deployments where several instances must observe the same
// evictions. The sliding TTL is implemented with GETEX; capacity bounding
// is left to Redis' own maxmemory policy.
type RedisConfigCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	logger    *zap.Logger
}

// NewRedisConfigCache creates a Redis-backed tenant configuration cache
// and verifies connectivity.
func NewRedisConfigCache(client *redis.Client, keyPrefix string, ttl time.Duration, logger *zap.Logger) (*RedisConfigCache, error) {
	if keyPrefix == "" {
		keyPrefix = "tenantcfg"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisConfigCache{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		logger:    logger,
	}, nil
}

func (c *RedisConfigCache) key(tenantKey string) string {
	return c.keyPrefix + ":" + tenantKey
}

// Get returns the cached view, refreshing its TTL on a hit
func (c *RedisConfigCache) Get(ctx context.Context, tenantKey string) (*postal.ConfigurationView, bool, error) {
	payload, err := c.client.GetEx(ctx, c.key(tenantKey), c.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read tenant config from Redis: %w", err)
	}

	var view postal.ConfigurationView
	if err := json.Unmarshal(payload, &view); err != nil {
		// A corrupt entry behaves like a miss so the caller rebuilds it.
		c.logger.Warn("dropping undecodable tenant config entry",
			zap.String("tenant", tenantKey),
			zap.Error(err))
		c.client.Del(ctx, c.key(tenantKey))
		return nil, false, nil
	}
	return &view, true, nil
}

// Set stores a freshly built view with the configured TTL
func (c *RedisConfigCache) Set(ctx context.Context, tenantKey string, view *postal.ConfigurationView) error {
	if view == nil {
		return nil
	}
	payload, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to encode tenant config: %w", err)
	}
	if err := c.client.Set(ctx, c.key(tenantKey), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache tenant config: %w", err)
	}
	return nil
}

// Evict removes one tenant's entry; absent keys are a no-op
func (c *RedisConfigCache) Evict(ctx context.Context, tenantKey string) error {
	if err := c.client.Del(ctx, c.key(tenantKey)).Err(); err != nil {
		return fmt.Errorf("failed to evict tenant config: %w", err)
	}
	return nil
}

// EvictAll removes every entry under the cache's key prefix
func (c *RedisConfigCache) EvictAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.keyPrefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= 100 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to evict tenant configs: %w", err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan tenant config keys: %w", err)
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to evict tenant configs: %w", err)
		}
	}
	return nil
}

// Close closes the Redis client
func (c *RedisConfigCache) Close() error {
	return c.client.Close()
}

// Ensure RedisConfigCache implements postal.ConfigCache
var _ postal.ConfigCache = (*RedisConfigCache)(nil)
