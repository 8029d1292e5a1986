package set

import (
	"github.com/sobadon/retrotv/cmd/retrotv/app"
	"github.com/sobadon/retrotv/domain/model/date"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/schedule"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "set DAY STATION START END SHOW_ID",
		Short: "add or replace a block in the override schedule (END \"\" or 00:00 means end of day)",
		Args:  cobra.ExactArgs(5),
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

			d, err := a.Editor().Set(cmd.Context(), day, program.Station(args[1]), args[2], args[3], args[4])
			if err != nil {
				return err
			}
			return app.WriteWeekly(cmd.OutOrStdout(), schedule.Weekly{day: d})
		},
	}
	return rootCmd
}
