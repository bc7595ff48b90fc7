package kv

import (
	"context"
	"sync"
	"time"
)

type memoryRecord struct {
	value     []byte
	expiresAt time.Time
}

type memoryImpl struct {
	mu      sync.Mutex
	records map[string]memoryRecord
}

func NewMemoryInstance() Provider {
	return &memoryImpl{
		records: map[string]memoryRecord{},
	}
}

func (i *memoryImpl) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	rec := memoryRecord{value: value}
	if ttl > 0 {
		rec.expiresAt = time.Now().Add(ttl)
	}
	i.records[key] = rec
	return nil
}

func (i *memoryImpl) Get(ctx context.Context, key string) ([]byte, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.get(key), nil
}

func (i *memoryImpl) GetDel(ctx context.Context, key string) ([]byte, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	value := i.get(key)
	delete(i.records, key)
	return value, nil
}

func (i *memoryImpl) Delete(ctx context.Context, key string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.records, key)
	return nil
}

func (i *memoryImpl) get(key string) []byte {
	rec, ok := i.records[key]
	if !ok {
		return nil
	}
	if !rec.expiresAt.IsZero() && time.Now().After(rec.expiresAt) {
		delete(i.records, key)
		return nil
	}
	return rec.value
}
