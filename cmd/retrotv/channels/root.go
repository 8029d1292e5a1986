package channels

import (
	"fmt"

	"github.com/sobadon/retrotv/cmd/retrotv/app"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "channels",
		Short: "list channels (number, station, enabled)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.OpenFromEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			for _, ch := range a.Snapshot().Channels.Sorted() {
				enabled := "0"
				if ch.Enabled {
					enabled = "1"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", ch.Number, ch.Station, enabled)
			}
			return nil
		},
	}
	return rootCmd
}
