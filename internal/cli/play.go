package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"trivia-quiz/internal/app"
	"trivia-quiz/internal/domain"
	"trivia-quiz/internal/transport/terminal"
)

const nameAttempts = 3

// NewPlayCmd plays rounds in the terminal until the player stops.
func NewPlayCmd(configPath *string) *cobra.Command {
	var rounds int
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play trivia in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackends(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer b.Close()

			surface := terminal.NewSurface(cmd.InOrStdin(), cmd.OutOrStdout())
			session := app.NewSession(b.identity(b.cfg.Identity.Cookie), b.ledger, b.source, surface, b.sessionConfig(false))
			return play(cmd.Context(), session, surface, cmd.OutOrStdout(), rounds)
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", 0, "rounds to play; 0 asks after each round")
	return cmd
}

func play(ctx context.Context, session *app.Session, surface *terminal.Surface, out io.Writer, rounds int) error {
	if err := session.Start(ctx); err != nil {
		if !errors.Is(err, domain.ErrFetch) {
			return err
		}
		if err := retryFetch(ctx, session, surface, out, err); err != nil {
			return err
		}
	}

	for played := 0; ; {
		username := ""
		if state, _ := session.State(ctx); state == domain.Anonymous {
			name, err := askName(surface, out)
			if err != nil {
				return err
			}
			username = name
		}

		total := len(session.Questions())
		entry, err := session.Submit(ctx, username)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "You scored %d out of %d.\n", entry.Score, total)
		played++

		if rounds > 0 && played >= rounds {
			return nil
		}
		if rounds == 0 {
			again, err := surface.Confirm("Play another round?")
			if err != nil || !again {
				return err
			}
		}
		if err := session.FetchQuestions(ctx); err != nil {
			if err := retryFetch(ctx, session, surface, out, err); err != nil {
				return err
			}
		}
	}
}

// retryFetch offers to fetch again until a batch loads or the player gives up.
func retryFetch(ctx context.Context, session *app.Session, surface *terminal.Surface, out io.Writer, err error) error {
	for err != nil {
		fmt.Fprintln(out, "Could not load questions.")
		retry, cerr := surface.Confirm("Try again?")
		if cerr != nil {
			return cerr
		}
		if !retry {
			return err
		}
		err = session.FetchQuestions(ctx)
	}
	return nil
}

func askName(surface *terminal.Surface, out io.Writer) (string, error) {
	for i := 0; i < nameAttempts; i++ {
		name, err := surface.PromptUsername()
		if err != nil {
			return "", err
		}
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
		fmt.Fprintln(out, "Please enter a username.")
	}
	return "", domain.ErrEmptyUsername
}
