package scheduled

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sobadon/retrotv/cmd/retrotv/app"
	"github.com/spf13/cobra"
)

var errNothingScheduled = errors.New("nothing scheduled")

// IsNothingScheduled は枠がなかったことによる終了かどうか
func IsNothingScheduled(err error) bool {
	return errors.Is(err, errNothingScheduled)
}

func Command() *cobra.Command {
	var at string
	rootCmd := &cobra.Command{
		Use:   "scheduled CH",
		Short: "print show_id<TAB>path of the block on air (exit 1 when nothing is scheduled)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			channelNumber, err := app.ParseChannel(args[0])
			if err != nil {
				return err
			}
			instant, err := app.ParseInstant(at)
			if err != nil {
				return err
			}

			a, err := app.OpenFromEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			_, show, ok := a.Resolver().Scheduled(channelNumber, instant)
			if !ok {
				return errNothingScheduled
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", show.ID, show.Path)
			return nil
		},
	}
	rootCmd.Flags().StringVar(&at, "at", "", "instant to resolve (RFC 3339, default now)")
	return rootCmd
}
