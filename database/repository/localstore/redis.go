package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"airlace/models"

	"github.com/go-redis/redis/v8"
)

const (
	cartKey      = "cart"
	recentKey    = "recent_searches"
	lastOrderKey = "last_order"
)

// RedisStore persists the durable keys in Redis. Values are the same JSON
// documents the file store writes, so the backends are interchangeable.
// The cart and last order live on the durable client; recent searches are
// ephemeral and go to the cache client, which may point at a different DB.
type RedisStore struct {
	durable *redis.Client
	cache   *redis.Client
}

// NewRedisStore creates a RedisStore over the given clients.
func NewRedisStore(durable, cache *redis.Client) *RedisStore {
	return &RedisStore{durable: durable, cache: cache}
}

func (s *RedisStore) newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}

func (s *RedisStore) Load() (*models.CartState, error) {
	ctx, cancel := s.newContext()
	defer cancel()

	data, err := s.durable.Get(ctx, cartKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart from redis: %w", err)
	}
	var state models.CartState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to parse persisted cart: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) Save(state models.CartState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	ctx, cancel := s.newContext()
	defer cancel()
	if err := s.durable.Set(ctx, cartKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart to redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear() error {
	ctx, cancel := s.newContext()
	defer cancel()
	if err := s.durable.Del(ctx, cartKey).Err(); err != nil {
		return fmt.Errorf("failed to clear cart in redis: %w", err)
	}
	return nil
}

func (s *RedisStore) LoadRecent() ([]models.RecentSearch, error) {
	ctx, cancel := s.newContext()
	defer cancel()

	data, err := s.cache.Get(ctx, recentKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read recent searches from redis: %w", err)
	}
	var searches []models.RecentSearch
	if err := json.Unmarshal([]byte(data), &searches); err != nil {
		return nil, fmt.Errorf("failed to parse recent searches: %w", err)
	}
	return searches, nil
}

func (s *RedisStore) SaveRecent(searches []models.RecentSearch) error {
	data, err := json.Marshal(searches)
	if err != nil {
		return fmt.Errorf("failed to marshal recent searches: %w", err)
	}
	ctx, cancel := s.newContext()
	defer cancel()
	if err := s.cache.Set(ctx, recentKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save recent searches to redis: %w", err)
	}
	return nil
}

func (s *RedisStore) SaveLastOrder(confirmationID string) error {
	ctx, cancel := s.newContext()
	defer cancel()
	if err := s.durable.Set(ctx, lastOrderKey, confirmationID, 0).Err(); err != nil {
		return fmt.Errorf("failed to save last order to redis: %w", err)
	}
	return nil
}

func (s *RedisStore) LastOrder() (string, error) {
	ctx, cancel := s.newContext()
	defer cancel()

	id, err := s.durable.Get(ctx, lastOrderKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read last order from redis: %w", err)
	}
	return id, nil
}
