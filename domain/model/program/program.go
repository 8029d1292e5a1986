package program

import "sort"

// 番組表が状態として持つ「放送休止」系の番組 ID
// これらはコンテンツを持たず、プレイリストを参照しない
const (
	ShowIDSignOff = "SIGNOFF"
	ShowIDSignOn  = "SIGNON"
)

type Show struct {
	// 番組表から参照される ID
	ID string

	// 表示用タイトル
	Title string

	// コンテンツのパスの前方一致に使うプレフィックス
	// 空のときは局のプレイリスト全体から選ぶ
	Path string

	// 番組を持っている局
	Station Station
}

// DisplayTitle はタイトルがなければ ID を返す
func (s Show) DisplayTitle() string {
	if s.Title == "" {
		return s.ID
	}
	return s.Title
}

func IsOffAirMarker(showID string) bool {
	return showID == ShowIDSignOff || showID == ShowIDSignOn
}

// ID -> Show
type Catalog map[string]Show

func NewCatalog(shows []Show) Catalog {
	c := make(Catalog, len(shows))
	for _, s := range shows {
		c[s.ID] = s
	}
	return c
}

func (c Catalog) Lookup(id string) (Show, bool) {
	s, ok := c[id]
	return s, ok
}

// Sorted は ID 順の一覧を返す
func (c Catalog) Sorted() []Show {
	shows := make([]Show, 0, len(c))
	for _, s := range c {
		shows = append(shows, s)
	}
	sort.Slice(shows, func(i, j int) bool {
		return shows[i].ID < shows[j].ID
	})
	return shows
}
