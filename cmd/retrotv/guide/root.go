package guide

import (
	"fmt"
	"io"

	"github.com/sobadon/retrotv/cmd/retrotv/app"
	"github.com/sobadon/retrotv/domain/model/date"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/usecase"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	var all bool
	rootCmd := &cobra.Command{
		Use:   "guide [STATION] [DAY]",
		Short: "show the effective schedule of a station (today when DAY is omitted)",
		Args: func(cmd *cobra.Command, args []string) error {
			if all {
				return cobra.MaximumNArgs(1)(cmd, args)
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.OpenFromEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			dayArg := ""
			if all && len(args) == 1 {
				dayArg = args[0]
			} else if !all && len(args) == 2 {
				dayArg = args[1]
			}
			day := a.Today()
			if dayArg != "" {
				day, err = date.ParseWeekday(dayArg)
				if err != nil {
					return err
				}
			}

			r := a.Resolver()
			out := cmd.OutOrStdout()
			if !all {
				writeSlots(out, r.Guide(program.Station(args[0]), day))
				return nil
			}

			for _, g := range r.GuideChannels(day, a.Config.Skip()) {
				fmt.Fprintf(out, "# %d %s\n", g.Channel, g.Station)
				writeSlots(out, g.Slots)
			}
			return nil
		},
	}
	rootCmd.Flags().BoolVar(&all, "all", false, "list every channel except skipped stations")
	return rootCmd
}

func writeSlots(w io.Writer, slots []usecase.GuideSlot) {
	for _, s := range slots {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Start, s.End, s.ShowID, s.Title)
	}
}
