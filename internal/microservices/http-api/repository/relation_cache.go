package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	RelationFollowing = "following"
	RelationBlocked   = "blocked"
)

// RelationCache stores resolved id sets per user and relation kind.
type RelationCache interface {
	Get(ctx context.Context, userID, kind string) (ids []string, ok bool, err error)
	Set(ctx context.Context, userID, kind string, ids []string) error
	Invalidate(ctx context.Context, userID string, kinds ...string) error
}

// RedisRelationCache is the Redis implementation of RelationCache. A nil
// *RedisRelationCache is valid and behaves as an always-missing cache.
type RedisRelationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRelationCache connects to redisURL (redis://host:port/db).
func NewRedisRelationCache(redisURL, password string, ttl time.Duration) (*RedisRelationCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisRelationCacheFromClient(rdb, ttl), nil
}

func NewRedisRelationCacheFromClient(client *redis.Client, ttl time.Duration) *RedisRelationCache {
	return &RedisRelationCache{client: client, ttl: ttl}
}

func relationKey(userID, kind string) string {
	return fmt.Sprintf("relations:user:%s:%s", userID, kind)
}

func (c *RedisRelationCache) Get(ctx context.Context, userID, kind string) ([]string, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}
	raw, err := c.client.Get(ctx, relationKey(userID, kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, false, fmt.Errorf("decode cached %s for %s: %w", kind, userID, err)
	}
	return ids, true, nil
}

func (c *RedisRelationCache) Set(ctx context.Context, userID, kind string, ids []string) error {
	if c == nil || c.client == nil {
		return nil
	}
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, relationKey(userID, kind), raw, c.ttl).Err()
}

func (c *RedisRelationCache) Invalidate(ctx context.Context, userID string, kinds ...string) error {
	if c == nil || c.client == nil || len(kinds) == 0 {
		return nil
	}
	keys := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		keys = append(keys, relationKey(userID, kind))
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisRelationCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
