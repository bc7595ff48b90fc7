package kv

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type redisImpl struct {
	client *redis.Client
}

func NewRedisInstance(client *redis.Client) Provider {
	return &redisImpl{client: client}
}

func (i *redisImpl) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := i.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		return errors.Wrap(err, "ошибка записи в redis")
	}
	return nil
}

func (i *redisImpl) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := i.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка чтения из redis")
	}
	return value, nil
}

func (i *redisImpl) GetDel(ctx context.Context, key string) ([]byte, error) {
	value, err := i.client.GetDel(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка чтения из redis")
	}
	return value, nil
}

func (i *redisImpl) Delete(ctx context.Context, key string) error {
	err := i.client.Del(ctx, key).Err()
	if err != nil {
		return errors.Wrap(err, "ошибка удаления из redis")
	}
	return nil
}
