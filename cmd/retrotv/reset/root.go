package reset

import (
	"github.com/sobadon/retrotv/cmd/retrotv/app"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reset",
		Short: "clear the override schedule (back to defaults)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.OpenFromEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			w, err := a.Editor().Reset(cmd.Context())
			if err != nil {
				return err
			}
			return app.WriteWeekly(cmd.OutOrStdout(), w)
		},
	}
	return rootCmd
}
