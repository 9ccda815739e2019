package cacheStore

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"fdalabel-api/internal/config"
	"fdalabel-api/pkg/logger_i"
)

var (
	instances = make(map[int]*RedisCache)
	mu        sync.RWMutex
	logger    *logger_i.Logger
	once      sync.Once
)

type RedisCache struct {
	client *redis.Client
	dbType int
}

// GetRedisCache returns the shared cache for a redis DB index, or nil when
// redis is offline. Callers fall back to the in-memory cache on nil.
func GetRedisCache(ctx context.Context, dbType int) *RedisCache {
	mu.RLock()
	instance, exists := instances[dbType]
	mu.RUnlock()

	if exists {
		return instance
	}

	mu.Lock()
	defer mu.Unlock()

	if instance, exists = instances[dbType]; exists {
		return instance
	}
	return createNewCache(ctx, dbType)
}

func createNewCache(ctx context.Context, dbType int) *RedisCache {
	if logger == nil {
		logger = logger_i.NewLogger("Response Cache")
	}

	newClient := redis.NewClient(&redis.Options{
		Addr:                  config.GetRedisAddr(),
		Password:              config.RedisPassword,
		DB:                    dbType,
		ContextTimeoutEnabled: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := newClient.Ping(pingCtx).Err(); err != nil {
		logger.Error("Redis is offline: ", "error", err.Error())
		return nil
	}

	logger.Info("Redis response cache init successfully", "db", dbType)

	newCache := &RedisCache{
		client: newClient,
		dbType: dbType,
	}

	instances[dbType] = newCache
	once.Do(func() {
		go closeRedisCaches(ctx)
	})
	return newCache
}

func closeRedisCaches(ctx context.Context) {
	<-ctx.Done()
	logger.Info("Closing redis caches")
	mu.Lock()
	defer mu.Unlock()
	for _, cache := range instances {
		if err := cache.client.Close(); err != nil {
			logger.Error("Error closing redis client", "error", err)
		}
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// NewTestCache is for _test.go files only.
func NewTestCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}
