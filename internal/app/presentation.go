package app

import (
	"math/rand"
	"time"

	"trivia-quiz/internal/domain"
)

// Rand is the random source used for shuffling. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Builder turns fetched records into presented questions with shuffled choices.
type Builder struct {
	rnd Rand
}

// NewBuilder uses rnd for every permutation; pass a seeded source in tests.
func NewBuilder(rnd Rand) *Builder {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Builder{rnd: rnd}
}

// Build shuffles the record's answers and marks the correct one.
// If the incorrect answers repeat the correct text, only the first match after
// shuffling is marked correct.
func (b *Builder) Build(record domain.QuestionRecord, index int) domain.PresentedQuestion {
	answers := make([]string, 0, len(record.IncorrectAnswers)+1)
	answers = append(answers, record.CorrectAnswer)
	answers = append(answers, record.IncorrectAnswers...)
	b.shuffle(answers)

	choices := make([]domain.Choice, len(answers))
	marked := false
	for i, text := range answers {
		correct := !marked && text == record.CorrectAnswer
		if correct {
			marked = true
		}
		choices[i] = domain.Choice{Text: text, IsCorrect: correct}
	}

	return domain.PresentedQuestion{
		Index:      index,
		Prompt:     record.Prompt,
		Category:   record.Category,
		Difficulty: record.Difficulty,
		Choices:    choices,
	}
}

// BuildBatch builds every record, indexing them in fetch order.
func (b *Builder) BuildBatch(records []domain.QuestionRecord) []domain.PresentedQuestion {
	questions := make([]domain.PresentedQuestion, len(records))
	for i, record := range records {
		questions[i] = b.Build(record, i)
	}
	return questions
}

// shuffle is a Fisher-Yates permutation driven by b.rnd.
func (b *Builder) shuffle(items []string) {
	for i := len(items) - 1; i > 0; i-- {
		j := b.rnd.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
