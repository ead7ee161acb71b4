package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MOWLI17/luxora-sub001/internal/domain"
)

const defaultOpTimeout = 3 * time.Second

// Store — реализация BlobStore поверх Redis. Один логический ключ —
// одна строка Redis с сериализованной коллекцией.
type Store struct {
	client *goredis.Client
	// ttl нулевая — блоб живёт без истечения.
	ttl time.Duration
}

// NewBlobStore оборачивает готовый клиент Redis.
func NewBlobStore(client *goredis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Get возвращает блоб по ключу; отсутствие ключа — не ошибка.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultOpTimeout)
	defer cancel()

	blob, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return blob, true, nil
}

// Set перезаписывает блоб целиком.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, defaultOpTimeout)
	defer cancel()

	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Delete удаляет ключ.
func (s *Store) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultOpTimeout)
	defer cancel()

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// Ping проверяет доступность Redis (для health checks).
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultOpTimeout)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

var _ domain.BlobStore = (*Store)(nil)
