package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewNewPlayerCmd forgets the remembered player so the next game starts anonymous.
func NewNewPlayerCmd(configPath *string) *cobra.Command {
	var profile string
	cmd := &cobra.Command{
		Use:   "new-player",
		Short: "Forget the remembered player",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackends(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer b.Close()

			name := b.cfg.Identity.Cookie
			if profile != "" {
				name += "." + profile
			}
			if err := b.identity(name).Clear(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Player forgotten.")
			return err
		},
	}
	cmd.Flags().StringVar(&profile, "profile", "", "browser profile id of a served player")
	return cmd
}
