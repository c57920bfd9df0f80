package app_test

import (
	"context"
	"math/rand"
	"time"

	"trivia-quiz/internal/app"
	"trivia-quiz/internal/domain"
	"trivia-quiz/internal/infra/memory"
)

// fakeSurface records what a Session shows and answers with scripted picks.
type fakeSurface struct {
	rendered [][]domain.PresentedQuestion
	loading  []bool
	states   []domain.PlayerState
	names    []string
	scores   [][]domain.ScoreEntry
	// picks maps question index to the text of the chosen answer.
	picks map[int]string
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{picks: make(map[int]string)}
}

func (f *fakeSurface) Render(_ context.Context, questions []domain.PresentedQuestion) error {
	f.rendered = append(f.rendered, questions)
	return nil
}

func (f *fakeSurface) ReadSelections(_ context.Context) (domain.Selection, error) {
	selection := domain.Selection{}
	if len(f.rendered) == 0 {
		return selection, nil
	}
	current := f.rendered[len(f.rendered)-1]
	for index, text := range f.picks {
		if index < 0 || index >= len(current) {
			return nil, domain.ErrInvalidSelection
		}
		for _, choice := range current[index].Choices {
			if choice.Text == text {
				selection[index] = choice
				break
			}
		}
	}
	return selection, nil
}

func (f *fakeSurface) SetLoading(loading bool) {
	f.loading = append(f.loading, loading)
}

func (f *fakeSurface) ShowIdentity(state domain.PlayerState, username string) {
	f.states = append(f.states, state)
	f.names = append(f.names, username)
}

func (f *fakeSurface) ShowScores(entries []domain.ScoreEntry) error {
	f.scores = append(f.scores, entries)
	return nil
}

func (f *fakeSurface) lastState() domain.PlayerState {
	if len(f.states) == 0 {
		return ""
	}
	return f.states[len(f.states)-1]
}

func arithmeticRecord() domain.QuestionRecord {
	return domain.QuestionRecord{
		Prompt:           "2+2?",
		CorrectAnswer:    "4",
		IncorrectAnswers: []string{"3", "5", "22"},
	}
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

type testSession struct {
	*app.Session
	surface *fakeSurface
	log     *memory.ScoreLog
	cookies *memory.CookieStore
}

func newTestSession(source app.QuestionSource, refetch bool) testSession {
	now := func() time.Time { return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC) }
	surface := newFakeSurface()
	cookies := memory.NewCookieStoreWithClock(now)
	log := memory.NewScoreLog()
	session := app.NewSession(
		app.NewIdentityStoreWithClock(cookies, app.DefaultIdentityName, nil, now),
		app.NewScoreLedger(log, nil),
		source,
		surface,
		app.SessionConfig{
			BatchSize:          10,
			IdentityTTLDays:    7,
			RefetchAfterSubmit: refetch,
			Builder:            app.NewBuilder(seeded(1)),
			Now:                now,
		},
	)
	return testSession{Session: session, surface: surface, log: log, cookies: cookies}
}
