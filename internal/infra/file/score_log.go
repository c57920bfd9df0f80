package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-json"

	"trivia-quiz/internal/domain"
)

// ScoreLog keeps the whole score history as one JSON array in a single file,
// the on-disk counterpart of a localStorage entry. Append is a
// read-modify-write of the full array; concurrent writers from separate
// processes race and the last write wins.
type ScoreLog struct {
	path string
	mu   sync.Mutex
}

func NewScoreLog(path string) *ScoreLog {
	return &ScoreLog{path: path}
}

func (l *ScoreLog) Append(_ context.Context, entry domain.ScoreEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.read()
	if errors.Is(err, domain.ErrPersistenceRead) {
		// unreadable history is replaced, as if it were absent
		entries = nil
	} else if err != nil {
		return err
	}
	entries = append(entries, entry)

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	return writeAtomic(l.path, data)
}

func (l *ScoreLog) List(_ context.Context) ([]domain.ScoreEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

func (l *ScoreLog) read() ([]domain.ScoreEntry, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.ScoreEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.ScoreEntry{}, nil
	}
	var entries []domain.ScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrPersistenceRead, l.path, err)
	}
	if entries == nil {
		entries = []domain.ScoreEntry{}
	}
	return entries, nil
}
