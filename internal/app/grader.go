package app

import "trivia-quiz/internal/domain"

// Grade counts the questions whose selected choice is marked correct.
// Unanswered questions contribute nothing.
func Grade(questions []domain.PresentedQuestion, selection domain.Selection) int {
	score := 0
	for _, q := range questions {
		if choice, ok := selection[q.Index]; ok && choice.IsCorrect {
			score++
		}
	}
	return score
}
