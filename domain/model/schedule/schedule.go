package schedule

import (
	"github.com/sobadon/retrotv/domain/model/date"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/timeofday"
)

// 1 日分の番組表（局 -> 枠一覧）
type Day map[program.Station]Blocks

func (d Day) Blocks(station program.Station) Blocks {
	return d[station]
}

func (d Day) Resolve(station program.Station, t timeofday.Time) (Block, bool) {
	return d.Blocks(station).Resolve(t)
}

func (d Day) Clone() Day {
	if d == nil {
		return nil
	}
	c := make(Day, len(d))
	for station, blocks := range d {
		c[station] = blocks.Clone()
	}
	return c
}

// 1 週間分の番組表
// 設定ファイル由来のデフォルトと、編集された上書き（override）の 2 つが存在する
type Weekly map[date.Weekday]Day

func (w Weekly) Clone() Weekly {
	c := make(Weekly, len(w))
	for day, d := range w {
		c[day] = d.Clone()
	}
	return c
}

// Effective は day の実効的な番組表を返す
// 上書きがあればその日はまるごと上書きを使い、デフォルトとは混ぜない
// （上書きに出てこない局はその日は枠なし = エポック再生になる）
func Effective(defaults Weekly, overrides Weekly, day date.Weekday) Day {
	if o, ok := overrides[day]; ok && len(o) > 0 {
		return o
	}
	return defaults[day]
}

// EffectiveWeek は全曜日の実効的な番組表を返す
func EffectiveWeek(defaults Weekly, overrides Weekly) Weekly {
	w := make(Weekly, len(date.Week))
	for _, day := range date.Week {
		if d := Effective(defaults, overrides, day); d != nil {
			w[day] = d
		}
	}
	return w
}
