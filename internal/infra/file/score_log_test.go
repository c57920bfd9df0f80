package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trivia-quiz/internal/domain"
)

func TestScoreLogRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "triviaScores.json")
	log := NewScoreLog(path)

	entries, err := log.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	for _, score := range []int{3, 5, 1} {
		require.NoError(t, log.Append(ctx, domain.ScoreEntry{Username: "alice", Score: score, Date: "10/16/2026, 9:30:00 AM"}))
	}

	entries, err = NewScoreLog(path).List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []int{3, 5, 1}, []int{entries[0].Score, entries[1].Score, entries[2].Score})
	assert.Equal(t, domain.ScoreEntry{Username: "alice", Score: 1, Date: "10/16/2026, 9:30:00 AM"}, entries[2])
}

func TestScoreLogUsesBrowserFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "triviaScores.json")
	require.NoError(t, NewScoreLog(path).Append(ctx, domain.ScoreEntry{Username: "bob", Score: 4, Date: "d"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"username":"bob","score":4,"date":"d"}]`, string(raw))
}

func TestScoreLogUnreadable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "triviaScores.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
	log := NewScoreLog(path)

	_, err := log.List(ctx)
	assert.True(t, errors.Is(err, domain.ErrPersistenceRead), "got %v", err)

	require.NoError(t, log.Append(ctx, domain.ScoreEntry{Username: "alice", Score: 2}))
	entries, err := log.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].Username)
}

func TestScoreLogEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triviaScores.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	entries, err := NewScoreLog(path).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
