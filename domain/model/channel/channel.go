package channel

import (
	"sort"

	"github.com/sobadon/retrotv/domain/model/program"
)

type Channel struct {
	Number  int
	Station program.Station
	Enabled bool
}

// チャンネル一覧
// 外部（channels.tsv）が持ち主で、ここでは読むだけ
type Directory []Channel

func (d Directory) Lookup(number int) (Channel, bool) {
	for _, c := range d {
		if c.Number == number {
			return c, true
		}
	}
	return Channel{}, false
}

// Sorted はチャンネル番号順に並べたコピーを返す
func (d Directory) Sorted() Directory {
	sorted := make(Directory, len(d))
	copy(sorted, d)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})
	return sorted
}
