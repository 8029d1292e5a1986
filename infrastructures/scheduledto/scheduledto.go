// scheduledto は設定ファイルと上書きファイルで共通の番組表の JSON / YAML 表現
package scheduledto

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sobadon/retrotv/domain/model/date"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/schedule"
)

type Block struct {
	Start  string `json:"start" yaml:"start"`
	End    string `json:"end" yaml:"end"`
	ShowID string `json:"show_id" yaml:"show_id"`
}

// 曜日 -> 局 -> 枠一覧
type Weekly map[string]map[string][]Block

// ToModel は検証しながら schedule.Weekly に変換する
// 枠は開始時刻順に並べ直す
func ToModel(w Weekly) (schedule.Weekly, error) {
	weekly := make(schedule.Weekly, len(w))
	for dayStr, stations := range w {
		day, err := date.ParseWeekday(dayStr)
		if err != nil {
			return nil, err
		}

		d := make(schedule.Day, len(stations))
		for station, blocksDTO := range stations {
			blocks := make(schedule.Blocks, 0, len(blocksDTO))
			for _, b := range blocksDTO {
				block, err := schedule.NewBlock(b.Start, b.End, b.ShowID)
				if err != nil {
					return nil, errors.Wrapf(err, "%s %s", day, station)
				}
				blocks = append(blocks, block)
			}
			sort.SliceStable(blocks, func(i, j int) bool {
				return blocks[i].Start < blocks[j].Start
			})
			d[program.Station(station)] = blocks
		}
		weekly[day] = d
	}
	return weekly, nil
}

// FromModel は書き出し用の表現にする
// 1 日の終わりは "24:00" で書く
func FromModel(w schedule.Weekly) Weekly {
	dto := make(Weekly, len(w))
	for day, d := range w {
		stations := make(map[string][]Block, len(d))
		for station, blocks := range d {
			blocksDTO := make([]Block, 0, len(blocks))
			for _, b := range blocks {
				blocksDTO = append(blocksDTO, Block{
					Start:  b.Start.String(),
					End:    b.EffectiveEnd().String(),
					ShowID: b.ShowID,
				})
			}
			stations[station.String()] = blocksDTO
		}
		dto[day.String()] = stations
	}
	return dto
}
