package app_test

import (
	"testing"

	"trivia-quiz/internal/app"
	"trivia-quiz/internal/domain"
)

func choiceByText(t *testing.T, pq domain.PresentedQuestion, text string) domain.Choice {
	t.Helper()
	for _, choice := range pq.Choices {
		if choice.Text == text {
			return choice
		}
	}
	t.Fatalf("no choice %q in %+v", text, pq.Choices)
	return domain.Choice{}
}

func correctChoice(t *testing.T, pq domain.PresentedQuestion) domain.Choice {
	t.Helper()
	for _, choice := range pq.Choices {
		if choice.IsCorrect {
			return choice
		}
	}
	t.Fatalf("no correct choice in %+v", pq.Choices)
	return domain.Choice{}
}

func TestGradeEmptySelectionIsZero(t *testing.T) {
	batch := app.NewBuilder(seeded(1)).BuildBatch([]domain.QuestionRecord{arithmeticRecord(), arithmeticRecord()})
	if score := app.Grade(batch, domain.Selection{}); score != 0 {
		t.Fatalf("expected 0, got %d", score)
	}
	if score := app.Grade(batch, nil); score != 0 {
		t.Fatalf("expected 0 for nil selection, got %d", score)
	}
	if score := app.Grade(nil, nil); score != 0 {
		t.Fatalf("expected 0 for empty batch, got %d", score)
	}
}

func TestGradeIsMonotonic(t *testing.T) {
	records := []domain.QuestionRecord{arithmeticRecord(), arithmeticRecord(), arithmeticRecord()}
	batch := app.NewBuilder(seeded(9)).BuildBatch(records)

	selection := domain.Selection{}
	for i, pq := range batch {
		before := app.Grade(batch, selection)
		selection[pq.Index] = correctChoice(t, pq)
		after := app.Grade(batch, selection)
		if after != before+1 {
			t.Fatalf("step %d: expected %d, got %d", i, before+1, after)
		}
	}
	if score := app.Grade(batch, selection); score != len(batch) {
		t.Fatalf("expected perfect score %d, got %d", len(batch), score)
	}
}

func TestGradeArithmeticScenario(t *testing.T) {
	pq := app.NewBuilder(seeded(5)).Build(arithmeticRecord(), 0)
	if len(pq.Choices) != 4 || !choiceByText(t, pq, "4").IsCorrect {
		t.Fatalf("expected 4 choices with \"4\" correct, got %+v", pq.Choices)
	}
	batch := []domain.PresentedQuestion{pq}

	cases := []struct {
		name      string
		selection domain.Selection
		want      int
	}{
		{"correct", domain.Selection{0: choiceByText(t, pq, "4")}, 1},
		{"incorrect", domain.Selection{0: choiceByText(t, pq, "3")}, 0},
		{"unanswered", domain.Selection{}, 0},
		{"unknown question", domain.Selection{7: choiceByText(t, pq, "4")}, 0},
	}
	for _, tc := range cases {
		if got := app.Grade(batch, tc.selection); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}
