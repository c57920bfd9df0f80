package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"trivia-quiz/internal/domain"
)

// DefaultScoresKey is the single entry holding the serialized history.
const DefaultScoresKey = "triviaScores"

// ScoreLog keeps the score history as one JSON array under a single string key.
// Append is GET, append, SET with no WATCH: concurrent writers race and the
// last write wins.
type ScoreLog struct {
	client *redis.Client
	key    string
}

func NewScoreLog(client *redis.Client, key string) *ScoreLog {
	if key == "" {
		key = DefaultScoresKey
	}
	return &ScoreLog{client: client, key: key}
}

func (l *ScoreLog) Append(ctx context.Context, entry domain.ScoreEntry) error {
	entries, err := l.List(ctx)
	if errors.Is(err, domain.ErrPersistenceRead) {
		entries = nil
	} else if err != nil {
		return err
	}
	entries = append(entries, entry)

	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := l.client.Set(ctx, l.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	return nil
}

func (l *ScoreLog) List(ctx context.Context) ([]domain.ScoreEntry, error) {
	raw, err := l.client.Get(ctx, l.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.ScoreEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}
	var entries []domain.ScoreEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrPersistenceRead, l.key, err)
	}
	if entries == nil {
		entries = []domain.ScoreEntry{}
	}
	return entries, nil
}
