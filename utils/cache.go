// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"airlace/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CartStoreClient is the Redis client backing the durable cart store.
	CartStoreClient *redis.Client
	// CacheClient backs the ephemeral keys (recent searches).
	CacheClient *redis.Client
)

// InitCartStoreClient initializes the Redis client for the durable cart
// store (using the cart DB from AppConfig).
func InitCartStoreClient() {
	CartStoreClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCartDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CartStoreClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cart Store): %v", err)
	}
}

// GetCartStoreClient returns the Redis client for the durable cart store.
func GetCartStoreClient() *redis.Client {
	if CartStoreClient == nil {
		InitCartStoreClient()
	}
	return CartStoreClient
}

// InitCache initializes the Redis client for ephemeral keys (using the cache DB from AppConfig).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the Redis client for ephemeral keys.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
