package memory

import (
	"context"
	"sync"
	"time"
)

// CookieStore is an in-memory implementation of app.KeyValueStore.
type CookieStore struct {
	mu      sync.RWMutex
	cookies map[string]cookie
	clock   func() time.Time
}

type cookie struct {
	value     string
	expiresAt time.Time
}

func NewCookieStore() *CookieStore {
	return NewCookieStoreWithClock(time.Now)
}

// NewCookieStoreWithClock allows deterministic expiry in tests.
func NewCookieStoreWithClock(clock func() time.Time) *CookieStore {
	return &CookieStore{
		cookies: make(map[string]cookie),
		clock:   clock,
	}
}

func (s *CookieStore) Get(_ context.Context, name string) (string, time.Time, bool, error) {
	s.mu.RLock()
	c, ok := s.cookies[name]
	s.mu.RUnlock()
	if !ok {
		return "", time.Time{}, false, nil
	}
	if !c.expiresAt.After(s.clock()) {
		s.mu.Lock()
		if current, still := s.cookies[name]; still && current == c {
			delete(s.cookies, name)
		}
		s.mu.Unlock()
		return "", time.Time{}, false, nil
	}
	return c.value, c.expiresAt, true, nil
}

func (s *CookieStore) Set(_ context.Context, name, value string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cookies[name] = cookie{value: value, expiresAt: expiresAt}
	return nil
}

func (s *CookieStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cookies, name)
	return nil
}
