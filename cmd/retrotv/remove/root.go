package remove

import (
	"github.com/sobadon/retrotv/cmd/retrotv/app"
	"github.com/sobadon/retrotv/domain/model/date"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/schedule"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "remove DAY STATION START",
		Short: "remove the block starting at START from the override schedule",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := date.ParseWeekday(args[0])
			if err != nil {
				return err
			}

			a, err := app.OpenFromEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			d, err := a.Editor().Remove(cmd.Context(), day, program.Station(args[1]), args[2])
			if err != nil {
				return err
			}
			return app.WriteWeekly(cmd.OutOrStdout(), schedule.Weekly{day: d})
		},
	}
	return rootCmd
}
