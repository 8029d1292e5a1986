package run

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
	"github.com/sobadon/retrotv/cmd/retrotv/app"
	"github.com/sobadon/retrotv/internal/errutil"
	"github.com/sobadon/retrotv/internal/logutil"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()
)

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "run",
		Short: "reload the schedule periodically and keep the now-playing status file fresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	return rootCmd
}

func run(ctx context.Context) error {
	log.Info().Msg("start")

	var config config
	err := env.Parse(&config, env.Options{
		Prefix: "RTV_",
		OnSet: func(tag string, value interface{}, isDefault bool) {
			log.Debug().Msgf("Set %s to %v (default? %v)", tag, value, isDefault)
		},
	})
	if err != nil {
		return errors.Wrap(errutil.ErrConfigRead, err.Error())
	}

	a, err := app.OpenFromEnv(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	if a.Snapshot().OverrideErr != nil {
		log.Warn().Msgf("running with default schedule only: %v", a.Snapshot().OverrideErr)
	}
	log.Info().Msg("setup done")

	statusWriter := a.StatusWriter()
	scheduler := gocron.NewScheduler(a.Location)
	scheduler.SingletonModeAll()

	jobReload := func(ctx context.Context, job gocron.Job) {
		ctx = logutil.NewLogger().With().
			Int("job_count", job.RunCount()).
			Str("job", "reload").
			Logger().WithContext(ctx)
		zlog.Ctx(ctx).Debug().Msg("job start")
		err := a.Reload(ctx)
		if err != nil {
			// 前の Snapshot のまま続ける
			zlog.Ctx(ctx).Error().Msgf("%+v", err)
		}
	}
	_, err = scheduler.Every(a.Config.Refresh).DoWithJobDetails(jobReload, ctx)
	if err != nil {
		return errors.Wrap(errutil.ErrScheduler, err.Error())
	}

	jobStatus := func(ctx context.Context, job gocron.Job) {
		ctx = logutil.NewLogger().With().
			Int("job_count", job.RunCount()).
			Str("job", "status").
			Logger().WithContext(ctx)

		nps := a.Resolver().NowPlayingAll(time.Now())
		err := statusWriter.Write(ctx, nps)
		if err != nil {
			zlog.Ctx(ctx).Error().Msgf("%+v", err)
		}
	}
	_, err = scheduler.Every(config.StatusInterval).DoWithJobDetails(jobStatus, ctx)
	if err != nil {
		return errors.Wrap(errutil.ErrScheduler, err.Error())
	}

	scheduler.StartAsync()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Interrupt")
	scheduler.Stop()

	return nil
}
