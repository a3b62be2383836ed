package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/store"
)

// Store keeps the profile and share URL in Redis. Keys never expire.
type Store struct {
	client *redis.Client
}

var _ store.Store = (*Store)(nil)

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// LoadProfile retrieves the stored profile
func (s *Store) LoadProfile(ctx context.Context) (domain.Profile, error) {
	data, err := s.client.Get(ctx, ProfileKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Profile{}, store.ErrNotFound
		}
		return domain.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return store.DecodeProfile(data)
}

// SaveProfile overwrites the stored profile
func (s *Store) SaveProfile(ctx context.Context, p domain.Profile) error {
	data, err := store.EncodeProfile(p)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, ProfileKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// LoadShareURL retrieves the cached share URL
func (s *Store) LoadShareURL(ctx context.Context) (string, error) {
	url, err := s.client.Get(ctx, ShareURLKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", store.ErrNotFound
		}
		return "", fmt.Errorf("failed to get share url: %w", err)
	}
	return url, nil
}

// SaveShareURL stores the share URL. An existing URL is kept, so two racing
// first requests end up with the same URL.
func (s *Store) SaveShareURL(ctx context.Context, url string) error {
	if err := s.client.SetNX(ctx, ShareURLKey(), url, 0).Err(); err != nil {
		return fmt.Errorf("failed to save share url: %w", err)
	}
	return nil
}

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client
func (s *Store) Close() error {
	return s.client.Close()
}
