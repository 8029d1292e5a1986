package main

import (
	"context"
	"os"

	"github.com/sobadon/retrotv/cmd/retrotv/channels"
	"github.com/sobadon/retrotv/cmd/retrotv/guide"
	"github.com/sobadon/retrotv/cmd/retrotv/now"
	"github.com/sobadon/retrotv/cmd/retrotv/remove"
	"github.com/sobadon/retrotv/cmd/retrotv/reset"
	"github.com/sobadon/retrotv/cmd/retrotv/run"
	"github.com/sobadon/retrotv/cmd/retrotv/scheduled"
	"github.com/sobadon/retrotv/cmd/retrotv/set"
	"github.com/sobadon/retrotv/cmd/retrotv/shows"
	"github.com/sobadon/retrotv/cmd/retrotv/version"
	"github.com/sobadon/retrotv/internal/errutil"
	"github.com/sobadon/retrotv/internal/logutil"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()
)

func main() {
	os.Exit(execute())
}

func execute() int {
	var rootCmd = &cobra.Command{
		Use:           "retrotv",
		Short:         "schedule engine for a retro tv station",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(now.Command())
	rootCmd.AddCommand(shows.Command())
	rootCmd.AddCommand(channels.Command())
	rootCmd.AddCommand(guide.Command())
	rootCmd.AddCommand(scheduled.Command())
	rootCmd.AddCommand(set.Command())
	rootCmd.AddCommand(remove.Command())
	rootCmd.AddCommand(reset.Command())
	rootCmd.AddCommand(run.Command())
	rootCmd.AddCommand(version.Command())

	err := rootCmd.ExecuteContext(log.WithContext(context.Background()))
	if err == nil {
		return 0
	}

	// scheduled の「枠なし」はメッセージを出さずに 1
	if scheduled.IsNothingScheduled(err) {
		return 1
	}
	if errutil.IsUsage(err) {
		log.Error().Msgf("%v", err)
		return 2
	}
	log.Error().Msgf("%+v", err)
	return 1
}
