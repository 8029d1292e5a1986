package now

import (
	"github.com/pkg/errors"
	"github.com/sobadon/retrotv/cmd/retrotv/app"
	"github.com/sobadon/retrotv/domain/model/playout"
	"github.com/sobadon/retrotv/infrastructures/statefile"
	"github.com/sobadon/retrotv/internal/errutil"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	var at string
	rootCmd := &cobra.Command{
		Use:   "now [CH]",
		Short: "show what is playing (all channels when CH is omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instant, err := app.ParseInstant(at)
			if err != nil {
				return err
			}

			a, err := app.OpenFromEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			r := a.Resolver()

			var nps []playout.NowPlaying
			if len(args) == 0 {
				nps = r.NowPlayingAll(instant)
			} else {
				channelNumber, err := app.ParseChannel(args[0])
				if err != nil {
					return err
				}
				nps = []playout.NowPlaying{r.NowPlaying(channelNumber, instant)}
			}

			body, err := statefile.MarshalNowPlaying(nps)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(body); err != nil {
				return err
			}

			if len(nps) == 1 && nps[0].Status == playout.StatusUnknownChannel {
				return errors.Wrapf(errutil.ErrUnknownChannel, "channel %d", nps[0].Channel)
			}
			return nil
		},
	}
	rootCmd.Flags().StringVar(&at, "at", "", "instant to resolve (RFC 3339, default now)")
	return rootCmd
}
