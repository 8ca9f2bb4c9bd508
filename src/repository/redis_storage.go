package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisStorage struct {
	RDB    *redis.Client
	Prefix string
}

func (r *RedisStorage) GetCacheKey(key string) string {
	return fmt.Sprintf("%slocal-storage:%s", r.Prefix, key)
}

func (r *RedisStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	value, err := r.RDB.Get(ctx, r.GetCacheKey(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

func (r *RedisStorage) SetItem(ctx context.Context, key string, value string) error {
	return r.RDB.Set(ctx, r.GetCacheKey(key), value, 0).Err()
}
