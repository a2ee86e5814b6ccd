// Package redis implements storage.Store on a Redis key-value server.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"flowboard/diagram"
	"flowboard/storage"
)

// Store implements storage.Store using Redis.
type Store struct {
	client *backend.Client
	key    string
	ttl    time.Duration
}

type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithTTL sets an expiration on the saved document.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// New creates a Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		key:    storage.Key,
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Save persists the document, overwriting any previous value.
func (s *Store) Save(ctx context.Context, d *diagram.Diagram) error {
	data, err := storage.Marshal(d)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load restores the document from Redis.
func (s *Store) Load(ctx context.Context) (*diagram.Diagram, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, storage.ErrNotSaved
		}
		return nil, fmt.Errorf("failed to load from redis: %w", err)
	}
	return storage.Unmarshal([]byte(val))
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
