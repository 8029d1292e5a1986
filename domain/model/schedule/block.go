package schedule

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sobadon/retrotv/domain/model/timeofday"
	"github.com/sobadon/retrotv/internal/errutil"
)

// ある曜日・ある局の時間枠
// 日付をまたがない（またぐときは 24:00 までの枠と翌日 00:00 からの枠に分ける）
type Block struct {
	// 開始時刻（含む）
	Start timeofday.Time

	// 終了時刻（含まない）
	// 1 日の終わりは timeofday.EndOfDay
	End timeofday.Time

	ShowID string
}

// NewBlock は "HH:MM" 形式の開始・終了時刻から Block を作る
// 返されるエラー
// - errutil.ErrInvalidTime
// - errutil.ErrInvalidBlock
func NewBlock(start string, end string, showID string) (Block, error) {
	s, err := timeofday.Parse(start)
	if err != nil {
		return Block{}, err
	}
	e, err := timeofday.ParseEnd(end)
	if err != nil {
		return Block{}, err
	}
	if showID == "" {
		return Block{}, errors.Wrap(errutil.ErrInvalidBlock, "show id is empty")
	}

	b := Block{Start: s, End: e, ShowID: showID}
	if b.EffectiveEnd() <= b.Start {
		return Block{}, errors.Wrapf(errutil.ErrInvalidBlock, "end %s is not after start %s", b.EffectiveEnd(), b.Start)
	}
	return b, nil
}

// EffectiveEnd は比較に使う終了時刻
// 00:00 のまま渡された End も 24:00 として扱う
func (b Block) EffectiveEnd() timeofday.Time {
	if b.End == timeofday.Midnight {
		return timeofday.EndOfDay
	}
	return b.End
}

// Covers は start <= t < end の半開区間で判定する
func (b Block) Covers(t timeofday.Time) bool {
	return b.Start <= t && t < b.EffectiveEnd()
}

// ある曜日・ある局の枠一覧
// 開始時刻順に並んでいて、同じ開始時刻の枠は 1 つまで
type Blocks []Block

// Resolve は t を含む枠のうち、開始時刻が最も遅いものを返す
// 広い枠の中に後から差し込まれた狭い枠が勝つ
// 該当なしは正常系（エポック再生にフォールバックする）
func (bs Blocks) Resolve(t timeofday.Time) (Block, bool) {
	var best Block
	found := false
	for _, b := range bs {
		if !b.Covers(t) {
			continue
		}
		if !found || b.Start > best.Start {
			best = b
			found = true
		}
	}
	return best, found
}

// Upsert は同じ開始時刻の枠を置き換えて、開始時刻順に並べ直したものを返す
// レシーバは変更しない
func (bs Blocks) Upsert(block Block) Blocks {
	next := make(Blocks, 0, len(bs)+1)
	for _, b := range bs {
		if b.Start != block.Start {
			next = append(next, b)
		}
	}
	next = append(next, block)
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Start < next[j].Start
	})
	return next
}

// Remove は開始時刻が start の枠を除いたものを返す
// 該当がなければ removed = false で、中身は変わらない
func (bs Blocks) Remove(start timeofday.Time) (next Blocks, removed bool) {
	next = make(Blocks, 0, len(bs))
	for _, b := range bs {
		if b.Start == start {
			removed = true
			continue
		}
		next = append(next, b)
	}
	return next, removed
}

func (bs Blocks) Clone() Blocks {
	if bs == nil {
		return nil
	}
	c := make(Blocks, len(bs))
	copy(c, bs)
	return c
}
