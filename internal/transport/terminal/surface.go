package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"trivia-quiz/internal/domain"
)

// maxAttempts bounds how often an invalid answer is re-asked before the question is skipped.
const maxAttempts = 3

// Surface renders a session to a terminal and reads answers line by line.
type Surface struct {
	in  *bufio.Reader
	out io.Writer

	batch    []domain.PresentedQuestion
	state    domain.PlayerState
	loading  bool
	inputEOF bool
}

func NewSurface(in io.Reader, out io.Writer) *Surface {
	return &Surface{in: bufio.NewReader(in), out: out}
}

// Render prints the batch and keeps it as the one answers are read against.
func (s *Surface) Render(_ context.Context, questions []domain.PresentedQuestion) error {
	s.batch = questions
	for _, q := range questions {
		header := fmt.Sprintf("Q%d", q.Index+1)
		if q.Category != "" {
			header += " [" + q.Category
			if q.Difficulty != "" {
				header += ", " + q.Difficulty
			}
			header += "]"
		}
		if _, err := fmt.Fprintf(s.out, "\n%s: %s\n", header, q.Prompt); err != nil {
			return err
		}
		for i, choice := range q.Choices {
			if _, err := fmt.Fprintf(s.out, "  %c. %s\n", 'A'+i, choice.Text); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(s.out)
	return err
}

// ReadSelections asks for a letter per rendered question. A blank line skips
// the question; end of input leaves the remaining questions unanswered.
func (s *Surface) ReadSelections(ctx context.Context) (domain.Selection, error) {
	selection := domain.Selection{}
	for _, q := range s.batch {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.inputEOF {
			break
		}
		choice, ok, err := s.askChoice(q)
		if err != nil {
			return nil, err
		}
		if ok {
			selection[q.Index] = choice
		}
	}
	return selection, nil
}

func (s *Surface) askChoice(q domain.PresentedQuestion) (domain.Choice, bool, error) {
	if len(q.Choices) == 0 {
		return domain.Choice{}, false, nil
	}
	maxLetter := rune('A' + len(q.Choices) - 1)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintf(s.out, "Answer for Q%d (A-%c, blank to skip): ", q.Index+1, maxLetter)
		line, err := s.readLine()
		if err != nil {
			return domain.Choice{}, false, err
		}
		answer := strings.ToUpper(line)
		if answer == "" {
			return domain.Choice{}, false, nil
		}
		if len(answer) == 1 && rune(answer[0]) >= 'A' && rune(answer[0]) <= maxLetter {
			return q.Choices[answer[0]-'A'], true, nil
		}
		fmt.Fprintf(s.out, "Invalid input. Please enter a letter A-%c.\n", maxLetter)
	}
	return domain.Choice{}, false, nil
}

// PromptUsername asks an anonymous player for a name.
func (s *Surface) PromptUsername() (string, error) {
	fmt.Fprint(s.out, "Enter your name: ")
	return s.readLine()
}

// Confirm asks a yes/no question; anything but y/yes is no.
func (s *Surface) Confirm(question string) (bool, error) {
	fmt.Fprintf(s.out, "%s [y/N]: ", question)
	line, err := s.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (s *Surface) readLine() (string, error) {
	if s.inputEOF {
		return "", nil
	}
	line, err := s.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		s.inputEOF = true
		return strings.TrimSpace(line), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Surface) SetLoading(loading bool) {
	if loading && !s.loading {
		fmt.Fprintln(s.out, "Loading questions...")
	}
	s.loading = loading
}

// Loading reports whether a fetch is in flight.
func (s *Surface) Loading() bool {
	return s.loading
}

func (s *Surface) ShowIdentity(state domain.PlayerState, username string) {
	switch {
	case state == domain.Identified && s.state == "":
		fmt.Fprintf(s.out, "Welcome back, %s! Ready to play again?\n", username)
	case state == domain.Identified && s.state == domain.Anonymous:
		fmt.Fprintf(s.out, "Playing as %s.\n", username)
	case state == domain.Anonymous && s.state != domain.Anonymous:
		fmt.Fprintln(s.out, "New player: you will be asked for a name when you submit.")
	}
	s.state = state
}

// ShowScores prints the history as a table, oldest first.
func (s *Surface) ShowScores(entries []domain.ScoreEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(s.out, "No scores yet.")
		return err
	}
	return WriteScores(s.out, entries)
}

// WriteScores writes a username/score/date table.
func WriteScores(out io.Writer, entries []domain.ScoreEntry) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "USERNAME\tSCORE\tDATE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t%s\n", e.Username, e.Score, e.Date)
	}
	return w.Flush()
}
