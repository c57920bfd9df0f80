package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"trivia-quiz/internal/domain"
)

// ScoreLedger is the score history. Unreadable stored data is treated as an empty history.
type ScoreLedger struct {
	log    AppendOnlyLog
	logger *zap.Logger
}

func NewScoreLedger(log AppendOnlyLog, logger *zap.Logger) *ScoreLedger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreLedger{log: log, logger: logger}
}

// Append records entry at the end of the history.
func (l *ScoreLedger) Append(ctx context.Context, entry domain.ScoreEntry) error {
	if err := l.log.Append(ctx, entry); err != nil {
		return err
	}
	l.logger.Info("score saved", zap.String("username", entry.Username), zap.Int("score", entry.Score))
	return nil
}

// List returns every entry, oldest first.
func (l *ScoreLedger) List(ctx context.Context) ([]domain.ScoreEntry, error) {
	entries, err := l.log.List(ctx)
	if errors.Is(err, domain.ErrPersistenceRead) {
		l.logger.Warn("score history unreadable, showing empty history", zap.Error(err))
		return []domain.ScoreEntry{}, nil
	}
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.ScoreEntry{}
	}
	return entries, nil
}
