package usecase

import (
	"github.com/sobadon/retrotv/domain/model/date"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/timeofday"
)

// 番組表（EPG）の 1 行
type GuideSlot struct {
	Start  timeofday.Time
	End    timeofday.Time
	ShowID string
	Title  string
}

type ChannelGuide struct {
	Channel int
	Station program.Station
	Slots   []GuideSlot
}

// Guide は station の day の実効的な枠を番組名つきで返す
func (r *ucResolver) Guide(station program.Station, day date.Weekday) []GuideSlot {
	blocks := r.Effective(day).Blocks(station)
	slots := make([]GuideSlot, 0, len(blocks))
	for _, b := range blocks {
		title := b.ShowID
		if show, ok := r.snapshot.Shows.Lookup(b.ShowID); ok {
			title = show.DisplayTitle()
		}
		slots = append(slots, GuideSlot{
			Start:  b.Start,
			End:    b.EffectiveEnd(),
			ShowID: b.ShowID,
			Title:  title,
		})
	}
	return slots
}

// GuideChannels は全チャンネル分の Guide を返す
// skip に含まれる局（EPG 自身や CM 用の擬似チャンネルなど）は除く
func (r *ucResolver) GuideChannels(day date.Weekday, skip []program.Station) []ChannelGuide {
	var guides []ChannelGuide
	for _, ch := range r.snapshot.Channels.Sorted() {
		if containsStation(skip, ch.Station) {
			continue
		}
		guides = append(guides, ChannelGuide{
			Channel: ch.Number,
			Station: ch.Station,
			Slots:   r.Guide(ch.Station, day),
		})
	}
	return guides
}

func containsStation(stations []program.Station, target program.Station) bool {
	for _, s := range stations {
		if s.Equal(target) {
			return true
		}
	}
	return false
}
