// Package kvstore keeps string values in Redis.
package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/storefront/internal/port"
	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "storefront:"

type redisStore struct {
	client *redis.Client
	prefix string
}

type Option func(*redisStore)

// WithPrefix namespaces every key written by the store.
func WithPrefix(prefix string) Option {
	return func(s *redisStore) {
		s.prefix = prefix
	}
}

func NewRedis(client *redis.Client, opts ...Option) port.KVStore {
	s := &redisStore{
		client: client,
		prefix: defaultPrefix,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(fmt.Errorf("client.Ping: %w", err), client.Close())
	}

	return client, nil
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key is empty")
	}

	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", port.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("client.Get: %w", err)
	}

	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}
