package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trivia-quiz/internal/transport/terminal"
)

// NewScoresCmd prints the score history.
func NewScoresCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Print the score history",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackends(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer b.Close()

			entries, err := b.ledger.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No scores yet.")
				return err
			}
			return terminal.WriteScores(cmd.OutOrStdout(), entries)
		},
	}
}
