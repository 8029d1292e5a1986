package usecase

import (
	"context"
	"time"

	"github.com/sobadon/retrotv/domain/model/date"
	"github.com/sobadon/retrotv/domain/model/playout"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/schedule"
	"github.com/sobadon/retrotv/domain/model/timeofday"
)

type Loader interface {
	Load(ctx context.Context) (*Snapshot, error)
}

type Resolver interface {
	Effective(day date.Weekday) schedule.Day
	Resolve(station program.Station, day date.Weekday, t timeofday.Time) (schedule.Block, bool)
	Scheduled(channelNumber int, instant time.Time) (schedule.Block, program.Show, bool)
	NowPlaying(channelNumber int, instant time.Time) playout.NowPlaying
	NowPlayingAll(instant time.Time) []playout.NowPlaying
	Guide(station program.Station, day date.Weekday) []GuideSlot
	GuideChannels(day date.Weekday, skip []program.Station) []ChannelGuide
}

type Editor interface {
	Set(ctx context.Context, day date.Weekday, station program.Station, start string, end string, showID string) (schedule.Day, error)
	Remove(ctx context.Context, day date.Weekday, station program.Station, start string) (schedule.Day, error)
	Reset(ctx context.Context) (schedule.Weekly, error)
}

var (
	_ Loader   = (*ucLoader)(nil)
	_ Resolver = (*ucResolver)(nil)
	_ Editor   = (*ucEditor)(nil)
)
