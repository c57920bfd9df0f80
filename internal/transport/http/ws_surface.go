package http

import (
	"context"

	"trivia-quiz/internal/domain"
)

// wsSurface is the app.Surface of one WebSocket connection. It keeps the
// rendered batch so submitted positions resolve to the choices (and their
// correctness) the client was actually shown.
type wsSurface struct {
	send    chan<- outboundMessage[any]
	batch   []domain.PresentedQuestion
	pending map[int]int
}

func newWSSurface(send chan<- outboundMessage[any]) *wsSurface {
	return &wsSurface{send: send}
}

// stage records the picks of an incoming submit message for the next ReadSelections.
func (s *wsSurface) stage(answers map[int]int) {
	s.pending = answers
}

func (s *wsSurface) Render(_ context.Context, questions []domain.PresentedQuestion) error {
	s.batch = questions
	views := make([]questionView, len(questions))
	for i, q := range questions {
		views[i] = newQuestionView(q)
	}
	s.send <- outboundMessage[any]{Type: "questions", Payload: questionsPayload{Questions: views}}
	return nil
}

func (s *wsSurface) ReadSelections(_ context.Context) (domain.Selection, error) {
	byIndex := make(map[int]domain.PresentedQuestion, len(s.batch))
	for _, q := range s.batch {
		byIndex[q.Index] = q
	}

	pending := s.pending
	s.pending = nil

	selection := domain.Selection{}
	for index, position := range pending {
		q, ok := byIndex[index]
		if !ok || position < 0 || position >= len(q.Choices) {
			return nil, domain.ErrInvalidSelection
		}
		selection[index] = q.Choices[position]
	}
	return selection, nil
}

func (s *wsSurface) SetLoading(loading bool) {
	s.send <- outboundMessage[any]{Type: "loading", Payload: loadingPayload{Loading: loading}}
}

func (s *wsSurface) ShowIdentity(state domain.PlayerState, username string) {
	identified := state == domain.Identified
	s.send <- outboundMessage[any]{Type: "identity", Payload: identityPayload{
		State:            state,
		Username:         username,
		UsernameReadOnly: identified,
		ShowNewPlayer:    identified,
	}}
}

func (s *wsSurface) ShowScores(entries []domain.ScoreEntry) error {
	s.send <- outboundMessage[any]{Type: "scores", Payload: scoresPayload{Entries: entries}}
	return nil
}
