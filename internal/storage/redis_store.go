package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisStore persists snapshots as plain Redis string values.
type RedisStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisStore(client *redis.Client, logger *logrus.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		log:    logger,
	}
}

func (r *RedisStore) Read(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		r.log.Infof("RedisStore: No snapshot stored under key '%s'", key)
		return "", false, nil
	}
	if err != nil {
		r.log.Errorf("RedisStore: GET failed for key '%s': %v", key, err)
		return "", false, fmt.Errorf("redis GET for key %q failed: %w", key, err)
	}
	return value, true, nil
}

func (r *RedisStore) Write(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		r.log.Errorf("RedisStore: SET failed for key '%s': %v", key, err)
		return fmt.Errorf("redis SET for key %q failed: %w", key, err)
	}
	return nil
}
