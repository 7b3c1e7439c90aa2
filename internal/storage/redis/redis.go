package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/letsssgooo/quizMaster/internal/storage"
	"github.com/redis/go-redis/v9"
)

// Storage keeps the blobs as plain Redis strings under a common prefix.
type Storage struct {
	client *redis.Client
	prefix string
}

// NewStorage connects using a redis:// URL.
func NewStorage(ctx context.Context, url, prefix string) (*Storage, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Storage{client: client, prefix: prefix}, nil
}

// Get returns the value for key, or storage.ErrNotFound.
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

// Set stores value without expiry.
func (s *Storage) Set(ctx context.Context, key string, value string) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

func (s *Storage) Close() error {
	return s.client.Close()
}
