package shows

import (
	"fmt"

	"github.com/sobadon/retrotv/cmd/retrotv/app"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shows",
		Short: "list shows (id, title, path, station)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.OpenFromEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			for _, s := range a.Snapshot().Shows.Sorted() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", s.ID, s.DisplayTitle(), s.Path, s.Station)
			}
			return nil
		},
	}
	return rootCmd
}
