package prefs

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis persists preferences across restarts under a per-restaurant hash.
type Redis struct {
	rdb *redis.Client
	key string
	ctx context.Context
}

func NewRedis(addr, restaurantID string) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	key := "tableside:prefs"
	if restaurantID != "" {
		key = fmt.Sprintf("tableside:prefs:%s", restaurantID)
	}
	return &Redis{rdb: rdb, key: key, ctx: context.Background()}, nil
}

func (r *Redis) Load(key string) (string, error) {
	val, err := r.rdb.HGet(r.ctx, r.key, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *Redis) Save(key, value string) error {
	return r.rdb.HSet(r.ctx, r.key, key, value).Err()
}
