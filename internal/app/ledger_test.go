package app_test

import (
	"context"
	"reflect"
	"testing"

	"trivia-quiz/internal/app"
	"trivia-quiz/internal/domain"
	"trivia-quiz/internal/infra/memory"
)

func TestLedgerRoundTrip(t *testing.T) {
	ctx := context.Background()
	ledger := app.NewScoreLedger(memory.NewScoreLog(), nil)

	before, err := ledger.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if before == nil || len(before) != 0 {
		t.Fatalf("expected empty non-nil history, got %#v", before)
	}

	entry := domain.ScoreEntry{Username: "alice", Score: 7, Date: "10/16/2026, 9:30:00 AM"}
	if err := ledger.Append(ctx, entry); err != nil {
		t.Fatalf("append: %v", err)
	}
	after, _ := ledger.List(ctx)
	if len(after) != len(before)+1 {
		t.Fatalf("expected length %d, got %d", len(before)+1, len(after))
	}
	if !reflect.DeepEqual(after[len(after)-1], entry) {
		t.Fatalf("expected last entry %+v, got %+v", entry, after[len(after)-1])
	}
}

func TestLedgerKeepsAppendOrder(t *testing.T) {
	ctx := context.Background()
	ledger := app.NewScoreLedger(memory.NewScoreLog(), nil)

	for _, score := range []int{3, 5, 1} {
		if err := ledger.Append(ctx, domain.ScoreEntry{Username: "bob", Score: score}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	entries, _ := ledger.List(ctx)
	got := []int{}
	for _, e := range entries {
		got = append(got, e.Score)
	}
	if !reflect.DeepEqual(got, []int{3, 5, 1}) {
		t.Fatalf("expected scores [3 5 1], got %v", got)
	}
}

func TestLedgerUnreadableHistoryIsEmpty(t *testing.T) {
	ledger := app.NewScoreLedger(unreadableLog{}, nil)
	entries, err := ledger.List(context.Background())
	if err != nil {
		t.Fatalf("expected unreadable history to be recovered, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty history, got %+v", entries)
	}
}

type unreadableLog struct{}

func (unreadableLog) Append(context.Context, domain.ScoreEntry) error { return nil }

func (unreadableLog) List(context.Context) ([]domain.ScoreEntry, error) {
	return nil, domain.ErrPersistenceRead
}
