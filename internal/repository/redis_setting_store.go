package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

type RedisSettingStore struct {
	client *redis.Client
	prefix string
}

func NewRedisSettingStore(client *redis.Client, prefix string) *RedisSettingStore {
	return &RedisSettingStore{client: client, prefix: prefix}
}

func (s *RedisSettingStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %s (redis): %w", key, err)
	}
	return value, true, nil
}

// Put writes without expiry.
func (s *RedisSettingStore) Put(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("put setting %s (redis): %w", key, err)
	}
	return nil
}
