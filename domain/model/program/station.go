package program

import "strings"

// チャンネル番号が割り当てられる論理的な局
// 例: "cartoons", "NEWS", "MTV"
type Station string

func (s Station) String() string {
	return string(s)
}

// Equal は大文字小文字を区別せずに比較する
// channels.tsv と外部設定とで表記が揺れることがあるため
func (s Station) Equal(other Station) bool {
	return strings.EqualFold(string(s), string(other))
}
