package http

import (
	"encoding/json"

	"trivia-quiz/internal/domain"
)

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// submitPayload carries the picks as question index -> choice position.
type submitPayload struct {
	Username string      `json:"username"`
	Answers  map[int]int `json:"answers"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type welcomePayload struct {
	ProfileID string `json:"profileId"`
}

type identityPayload struct {
	State            domain.PlayerState `json:"state"`
	Username         string             `json:"username,omitempty"`
	UsernameReadOnly bool               `json:"usernameReadOnly"`
	ShowNewPlayer    bool               `json:"showNewPlayer"`
}

type loadingPayload struct {
	Loading bool `json:"loading"`
}

// questionView is what a client sees of a PresentedQuestion: correctness stays on the server.
type questionView struct {
	Index      int      `json:"index"`
	Prompt     string   `json:"prompt"`
	Category   string   `json:"category,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Choices    []string `json:"choices"`
}

type questionsPayload struct {
	Questions []questionView `json:"questions"`
}

type scoresPayload struct {
	Entries []domain.ScoreEntry `json:"entries"`
}

type resultPayload struct {
	Score int               `json:"score"`
	Total int               `json:"total"`
	Entry domain.ScoreEntry `json:"entry"`
}

func newQuestionView(q domain.PresentedQuestion) questionView {
	choices := make([]string, len(q.Choices))
	for i, c := range q.Choices {
		choices[i] = c.Text
	}
	return questionView{
		Index:      q.Index,
		Prompt:     q.Prompt,
		Category:   q.Category,
		Difficulty: q.Difficulty,
		Choices:    choices,
	}
}
