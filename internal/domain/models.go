package domain

import "time"

// ScoreDateLayout renders ScoreEntry dates the way a browser locale string does.
const ScoreDateLayout = "1/2/2006, 3:04:05 PM"

// QuestionRecord is one multiple-choice question as delivered by the question source.
type QuestionRecord struct {
	Prompt           string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
	Category         string   `json:"category,omitempty"`
	Difficulty       string   `json:"difficulty,omitempty"`
}

// Choice is a single answer option. IsCorrect is the only thing grading looks at.
type Choice struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// PresentedQuestion pairs a prompt with its shuffled, gradable choices.
type PresentedQuestion struct {
	Index      int      `json:"index"`
	Prompt     string   `json:"prompt"`
	Category   string   `json:"category,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Choices    []Choice `json:"choices"`
}

// Selection maps a question index to the chosen option. Missing keys are unanswered.
type Selection map[int]Choice

// ScoreEntry is one line of the score history.
type ScoreEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
	Date     string `json:"date"`
}

// NewScoreEntry stamps a score with the local time of the submission.
func NewScoreEntry(username string, score int, at time.Time) ScoreEntry {
	return ScoreEntry{
		Username: username,
		Score:    score,
		Date:     at.Local().Format(ScoreDateLayout),
	}
}

// Identity is the remembered player name and when it stops being valid.
type Identity struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the identity is no longer valid at now.
func (i Identity) Expired(now time.Time) bool {
	return !i.ExpiresAt.After(now)
}

// PlayerState is the identity state shown by a surface.
type PlayerState string

const (
	Anonymous  PlayerState = "anonymous"
	Identified PlayerState = "identified"
)
