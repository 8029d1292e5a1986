package playout

import (
	"path"
	"strings"
	"time"
)

// プレイリストの 1 エントリ
type Entry struct {
	// コンテンツへの参照（ファイルパス）
	Path string

	// 秒
	Duration int64
}

// 局ごとの順序つきプレイリスト
// 外部（index.tsv）が持ち主で、ここでは読むだけ
type Playlist []Entry

// Total は合計の長さ（秒）
func (p Playlist) Total() int64 {
	var total int64
	for _, e := range p {
		total += e.Duration
	}
	return total
}

// WithPrefix は Path が prefix で始まるエントリだけを順序を保って返す
func (p Playlist) WithPrefix(prefix string) Playlist {
	var filtered Playlist
	for _, e := range p {
		if strings.HasPrefix(e.Path, prefix) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// いまプレイリストのどこを流しているか
type Play struct {
	Entry Entry

	// エントリ先頭からの経過秒
	Offset int64
}

func (p Play) Label() string {
	return path.Base(p.Entry.Path)
}

// PlayAt は instant の時点でプレイリストのどこが放送中かを返す
// 再生位置を保存せず、エポック秒を合計時間で割った余りだけで決める
// 同じプレイリスト・同じ時刻なら、どのプロセスから呼んでも同じ結果になる
// 空のプレイリストや合計 0 秒のときは ok = false
func PlayAt(playlist Playlist, instant time.Time) (Play, bool) {
	total := playlist.Total()
	if total <= 0 {
		return Play{}, false
	}

	// 1970 年より前でも 0 <= position < total にする
	position := instant.Unix() % total
	if position < 0 {
		position += total
	}

	var accumulated int64
	for _, e := range playlist {
		// 境界ちょうどは次のエントリの先頭
		if position < accumulated+e.Duration {
			return Play{Entry: e, Offset: position - accumulated}, true
		}
		accumulated += e.Duration
	}

	return Play{}, false
}
