package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"trivia-quiz/internal/domain"
)

// ScoreLog stores one row per score entry. Unlike the single-entry backends
// appends are plain INSERTs, so concurrent writers never lose entries.
type ScoreLog struct {
	pool *pgxpool.Pool
}

func NewScoreLog(pool *pgxpool.Pool) *ScoreLog {
	return &ScoreLog{pool: pool}
}

func (l *ScoreLog) Append(ctx context.Context, entry domain.ScoreEntry) error {
	_, err := l.pool.Exec(ctx,
		`INSERT INTO score_entries (username, score, played_at) VALUES ($1, $2, $3)`,
		entry.Username, entry.Score, entry.Date,
	)
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

func (l *ScoreLog) List(ctx context.Context) ([]domain.ScoreEntry, error) {
	rows, err := l.pool.Query(ctx, `SELECT username, score, played_at FROM score_entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer rows.Close()

	entries := []domain.ScoreEntry{}
	for rows.Next() {
		var entry domain.ScoreEntry
		if err := rows.Scan(&entry.Username, &entry.Score, &entry.Date); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	return entries, nil
}
