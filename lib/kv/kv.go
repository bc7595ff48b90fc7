package kv

import (
	"context"
	"time"
)

// Provider - key-value хранилище с TTL для сессий и одноразовых сообщений.
// Реализации: redis и in-memory (тесты и запуск без redis).
type Provider interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get возвращает nil, nil если ключ отсутствует или истек
	Get(ctx context.Context, key string) ([]byte, error)
	// GetDel атомарно читает и удаляет значение
	GetDel(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
