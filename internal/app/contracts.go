package app

import (
	"context"
	"time"

	"trivia-quiz/internal/domain"
)

// QuestionSource retrieves a batch of question records (remote API, static fixture, etc).
type QuestionSource interface {
	Fetch(ctx context.Context, amount int) ([]domain.QuestionRecord, error)
}

// KeyValueStore holds named values with an absolute expiry, the way a cookie jar does.
// Get reports ok=false for a missing name.
type KeyValueStore interface {
	Get(ctx context.Context, name string) (value string, expiresAt time.Time, ok bool, err error)
	Set(ctx context.Context, name, value string, expiresAt time.Time) error
	Delete(ctx context.Context, name string) error
}

// AppendOnlyLog persists score entries in insertion order.
type AppendOnlyLog interface {
	Append(ctx context.Context, entry domain.ScoreEntry) error
	List(ctx context.Context) ([]domain.ScoreEntry, error)
}

// Surface is the interactive collaborator a Session renders into and reads selections from.
type Surface interface {
	// Render replaces whatever batch is currently shown.
	Render(ctx context.Context, questions []domain.PresentedQuestion) error
	// ReadSelections returns the player's current picks for the rendered batch.
	ReadSelections(ctx context.Context) (domain.Selection, error)
	SetLoading(loading bool)
	ShowIdentity(state domain.PlayerState, username string)
	ShowScores(entries []domain.ScoreEntry) error
}
