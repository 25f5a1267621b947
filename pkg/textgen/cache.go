package textgen

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/workseed/workseed/pkg/config"
)

// Cache stores generated text by derived key so repeated prompts do not hit
// the live service twice. Lookups and writes are best effort.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func NewMemoryCache() Cache {
	return &memoryCache{entries: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	return value, ok
}

func (c *memoryCache) Set(_ context.Context, key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

const redisCacheTTL = 24 * time.Hour

type redisCache struct {
	rdb redis.UniversalClient
}

// NewRedisCache connects a shared cache for generated content. A cache miss
// or connectivity problem is treated as a miss, never an error.
func NewRedisCache(cfg *config.RedisConfig) (Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addresses[0],
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &redisCache{rdb: rdb}, nil
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.rdb.Get(ctx, "workseed:textgen:"+key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

func (c *redisCache) Set(ctx context.Context, key, value string) {
	c.rdb.Set(ctx, "workseed:textgen:"+key, value, redisCacheTTL)
}
