package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"trivia-quiz/internal/domain"
)

// CookieStore is a Redis implementation of app.KeyValueStore.
// Values are stored as: SET trivia:cookie:{name} {"value":...,"expiresAt":...} EX {remaining}
// so Redis drops the key once it expires.
type CookieStore struct {
	client *redis.Client
}

func NewCookieStore(client *redis.Client) *CookieStore {
	return &CookieStore{client: client}
}

type storedCookie struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *CookieStore) Get(ctx context.Context, name string) (string, time.Time, bool, error) {
	raw, err := s.client.Get(ctx, s.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return "", time.Time{}, false, nil
	}
	if err != nil {
		return "", time.Time{}, false, fmt.Errorf("get cookie %s: %w", name, err)
	}
	var c storedCookie
	if err := json.Unmarshal(raw, &c); err != nil {
		return "", time.Time{}, false, fmt.Errorf("%w: cookie %s: %v", domain.ErrPersistenceRead, name, err)
	}
	return c.Value, c.ExpiresAt, true, nil
}

func (s *CookieStore) Set(ctx context.Context, name, value string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return s.Delete(ctx, name)
	}
	payload, err := json.Marshal(storedCookie{Value: value, ExpiresAt: expiresAt.UTC()})
	if err != nil {
		return fmt.Errorf("encode cookie %s: %w", name, err)
	}
	if err := s.client.Set(ctx, s.key(name), payload, ttl).Err(); err != nil {
		return fmt.Errorf("set cookie %s: %w", name, err)
	}
	return nil
}

func (s *CookieStore) Delete(ctx context.Context, name string) error {
	if err := s.client.Del(ctx, s.key(name)).Err(); err != nil {
		return fmt.Errorf("delete cookie %s: %w", name, err)
	}
	return nil
}

func (s *CookieStore) key(name string) string {
	return "trivia:cookie:" + name
}
