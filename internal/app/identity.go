package app

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"trivia-quiz/internal/domain"
)

// DefaultIdentityName is the cookie name the player's username is kept under.
const DefaultIdentityName = "username"

// IdentityStore resolves who is playing from a KeyValueStore entry with expiry.
type IdentityStore struct {
	kv     KeyValueStore
	name   string
	now    func() time.Time
	logger *zap.Logger
}

func NewIdentityStore(kv KeyValueStore, name string, logger *zap.Logger) *IdentityStore {
	return NewIdentityStoreWithClock(kv, name, logger, time.Now)
}

// NewIdentityStoreWithClock is used by tests that need to move time forward.
func NewIdentityStoreWithClock(kv KeyValueStore, name string, logger *zap.Logger, now func() time.Time) *IdentityStore {
	if name == "" {
		name = DefaultIdentityName
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IdentityStore{kv: kv, name: name, now: now, logger: logger}
}

// Get returns the stored identity. Expired or unreadable entries are reported as absent.
func (s *IdentityStore) Get(ctx context.Context) (domain.Identity, bool) {
	value, expiresAt, ok, err := s.kv.Get(ctx, s.name)
	if err != nil {
		s.logger.Warn("identity unreadable, treating player as anonymous", zap.String("name", s.name), zap.Error(err))
		return domain.Identity{}, false
	}
	if !ok || value == "" {
		return domain.Identity{}, false
	}
	identity := domain.Identity{Username: value, ExpiresAt: expiresAt}
	if identity.Expired(s.now()) {
		return domain.Identity{}, false
	}
	return identity, true
}

// Set remembers username for ttlDays from now.
func (s *IdentityStore) Set(ctx context.Context, username string, ttlDays int) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.ErrEmptyUsername
	}
	expiresAt := s.now().Add(time.Duration(ttlDays) * 24 * time.Hour)
	return s.kv.Set(ctx, s.name, username, expiresAt)
}

// Clear forgets the stored identity.
func (s *IdentityStore) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, s.name)
}
