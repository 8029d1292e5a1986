package playout

import (
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/schedule"
)

type NowPlaying struct {
	Channel int
	Station program.Station
	Status  Status

	// 表示用
	// エポック再生のときはファイル名、それ以外は番組名やライブ配信名
	Label string

	// 枠が見つかったときの番組
	ShowID string
	Title  string
	Block  *schedule.Block

	// エポック再生のときのエントリ
	Path     string
	Offset   int64
	Duration int64
}

// IsTerminalOffAir は放送休止枠かどうか
func (n NowPlaying) IsTerminalOffAir() bool {
	return n.Status == StatusOffAir
}

// Percent はエントリ内の進み具合（0 - 100）
func (n NowPlaying) Percent() float64 {
	if n.Duration <= 0 {
		return 0
	}
	return float64(n.Offset) / float64(n.Duration) * 100
}
