package usecase

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sobadon/retrotv/domain/model/playout"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/schedule"
	"github.com/sobadon/retrotv/domain/repository"
)

type ucLoader struct {
	scheduleConfig      repository.ScheduleConfig
	overridePersistence repository.OverridePersistence
	channelDirectory    repository.ChannelDirectory
	playlistSource      repository.PlaylistSource
	relaySource         repository.RelaySource
}

func NewLoader(
	scheduleConfig repository.ScheduleConfig,
	overridePersistence repository.OverridePersistence,
	channelDirectory repository.ChannelDirectory,
	playlistSource repository.PlaylistSource,
	relaySource repository.RelaySource,
) *ucLoader {
	return &ucLoader{
		scheduleConfig:      scheduleConfig,
		overridePersistence: overridePersistence,
		channelDirectory:    channelDirectory,
		playlistSource:      playlistSource,
		relaySource:         relaySource,
	}
}

// Load は Snapshot を組み立てる
// デフォルトの番組表・番組一覧が読めなければエラー（起動してはいけない）
// それ以外は読めなくても空として続行する
func (l *ucLoader) Load(ctx context.Context) (*Snapshot, error) {
	defaults, shows, err := l.scheduleConfig.Load(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Defaults:  defaults,
		Shows:     program.NewCatalog(shows),
		Playlists: map[program.Station]playout.Playlist{},
	}

	overrides, err := l.overridePersistence.Load(ctx)
	if err != nil {
		// 上書きはユーザーの編集のキャッシュでしかないので、読めなければリセット相当
		log.Ctx(ctx).Warn().Msgf("ignore override state: %+v", err)
		snapshot.OverrideErr = err
		overrides = schedule.Weekly{}
	}
	snapshot.Overrides = overrides

	channels, err := l.channelDirectory.List(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().Msgf("ignore channel directory: %+v", err)
	}
	snapshot.Channels = channels

	relays, err := l.relaySource.List(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().Msgf("ignore relay config: %+v", err)
	}
	snapshot.Relays = relays

	for _, ch := range channels {
		if _, ok := snapshot.Playlists[ch.Station]; ok {
			continue
		}
		if relay, _ := relays.Lookup(ch.Station); relay.Kind != program.StationKindScheduled {
			continue
		}

		playlist, err := l.playlistSource.Load(ctx, ch.Station)
		if err != nil {
			log.Ctx(ctx).Warn().Msgf("ignore playlist (station = %s): %+v", ch.Station, err)
			playlist = nil
		}
		snapshot.Playlists[ch.Station] = playlist
	}

	log.Ctx(ctx).Debug().Msgf("loaded snapshot (shows = %d, channels = %d, relays = %d)", len(snapshot.Shows), len(channels), len(relays))
	return snapshot, nil
}
