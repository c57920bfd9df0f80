package memory

import (
	"context"
	"sync"

	"trivia-quiz/internal/domain"
)

// ScoreLog is an in-memory implementation of app.AppendOnlyLog.
type ScoreLog struct {
	mu      sync.RWMutex
	entries []domain.ScoreEntry
}

func NewScoreLog() *ScoreLog {
	return &ScoreLog{}
}

func (l *ScoreLog) Append(_ context.Context, entry domain.ScoreEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

func (l *ScoreLog) List(_ context.Context) ([]domain.ScoreEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.ScoreEntry, len(l.entries))
	copy(out, l.entries)
	return out, nil
}
