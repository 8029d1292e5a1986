package usecase

import (
	"fmt"
	"time"

	"github.com/sobadon/retrotv/domain/model/date"
	"github.com/sobadon/retrotv/domain/model/playout"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/schedule"
	"github.com/sobadon/retrotv/domain/model/timeofday"
)

// 「いま何が流れているか」を答える
// Snapshot を読むだけで状態を持たないので、ロックなしで並行に呼んでよい
type ucResolver struct {
	snapshot *Snapshot
	location *time.Location
}

func NewResolver(snapshot *Snapshot, location *time.Location) *ucResolver {
	if location == nil {
		location = time.Local
	}
	return &ucResolver{
		snapshot: snapshot,
		location: location,
	}
}

// Effective は day の実効的な番組表
func (r *ucResolver) Effective(day date.Weekday) schedule.Day {
	return schedule.Effective(r.snapshot.Defaults, r.snapshot.Overrides, day)
}

// Resolve は station・day・t を含む枠を返す
// 枠がないのは正常系
func (r *ucResolver) Resolve(station program.Station, day date.Weekday, t timeofday.Time) (schedule.Block, bool) {
	return r.Effective(day).Resolve(station, t)
}

// Scheduled はチャンネルで instant に有効な枠とその番組を返す
func (r *ucResolver) Scheduled(channelNumber int, instant time.Time) (schedule.Block, program.Show, bool) {
	ch, ok := r.snapshot.Channels.Lookup(channelNumber)
	if !ok {
		return schedule.Block{}, program.Show{}, false
	}

	local := instant.In(r.location)
	block, ok := r.Resolve(ch.Station, date.FromTime(local), timeofday.FromTime(local))
	if !ok {
		return schedule.Block{}, program.Show{}, false
	}

	show, ok := r.snapshot.Shows.Lookup(block.ShowID)
	if !ok {
		show = program.Show{ID: block.ShowID, Station: ch.Station}
	}
	return block, show, true
}

// NowPlaying はチャンネルで instant に流れているものを返す
// 1. ライブ中継・番組表外の局はその情報をそのまま返す
// 2. 枠があれば番組のエピソードだけに絞ってエポック再生する
// 3. 枠がない・エピソードがなければ局のプレイリスト全体でエポック再生する
func (r *ucResolver) NowPlaying(channelNumber int, instant time.Time) playout.NowPlaying {
	ch, ok := r.snapshot.Channels.Lookup(channelNumber)
	if !ok {
		return playout.NowPlaying{
			Channel: channelNumber,
			Status:  playout.StatusUnknownChannel,
			Label:   fmt.Sprintf("CH%d", channelNumber),
		}
	}

	np := playout.NowPlaying{
		Channel: ch.Number,
		Station: ch.Station,
	}

	relay, _ := r.snapshot.Relays.Lookup(ch.Station)
	switch relay.Kind {
	case program.StationKindLive:
		np.Status = playout.StatusLive
		np.Label = relay.Label
		if np.Label == "" {
			np.Label = ch.Station.String() + " (LIVE)"
		}
		return np
	case program.StationKindOffBand:
		np.Status = playout.StatusOffBand
		np.Label = relay.Label
		if np.Label == "" {
			np.Label = ch.Station.String()
		}
		return np
	}

	playlist := r.snapshot.Playlists[ch.Station]

	block, show, ok := r.Scheduled(channelNumber, instant)
	if ok {
		if program.IsOffAirMarker(block.ShowID) {
			np.Status = playout.StatusOffAir
			np.Label = show.DisplayTitle()
			np.ShowID = block.ShowID
			np.Title = show.DisplayTitle()
			np.Block = &block
			return np
		}

		if show.Path != "" {
			if play, ok := playout.PlayAt(playlist.WithPrefix(show.Path), instant); ok {
				np.ShowID = block.ShowID
				np.Title = show.DisplayTitle()
				np.Block = &block
				return withPlay(np, playout.StatusScheduled, play)
			}
		}
	}

	if play, ok := playout.PlayAt(playlist, instant); ok {
		return withPlay(np, playout.StatusUnscheduled, play)
	}

	np.Status = playout.StatusNoContent
	np.Label = "No Content"
	return np
}

// NowPlayingAll は全チャンネル分をチャンネル番号順に返す
func (r *ucResolver) NowPlayingAll(instant time.Time) []playout.NowPlaying {
	channels := r.snapshot.Channels.Sorted()
	nps := make([]playout.NowPlaying, 0, len(channels))
	for _, ch := range channels {
		nps = append(nps, r.NowPlaying(ch.Number, instant))
	}
	return nps
}

func withPlay(np playout.NowPlaying, status playout.Status, play playout.Play) playout.NowPlaying {
	np.Status = status
	np.Label = play.Label()
	np.Path = play.Entry.Path
	np.Offset = play.Offset
	np.Duration = play.Entry.Duration
	return np
}
