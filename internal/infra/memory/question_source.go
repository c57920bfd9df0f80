package memory

import (
	"context"

	"trivia-quiz/internal/domain"
)

// StaticQuestionSource serves a fixed set of records (useful for tests/demos and offline play).
type StaticQuestionSource struct {
	records []domain.QuestionRecord
	err     error
}

func NewStaticQuestionSource(records []domain.QuestionRecord) *StaticQuestionSource {
	return &StaticQuestionSource{records: records}
}

// NewFailingQuestionSource always fails with err.
func NewFailingQuestionSource(err error) *StaticQuestionSource {
	return &StaticQuestionSource{err: err}
}

// Fetch returns up to amount records from the fixture.
func (s *StaticQuestionSource) Fetch(_ context.Context, amount int) ([]domain.QuestionRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	n := len(s.records)
	if amount > 0 && amount < n {
		n = amount
	}
	out := make([]domain.QuestionRecord, n)
	copy(out, s.records[:n])
	return out, nil
}
