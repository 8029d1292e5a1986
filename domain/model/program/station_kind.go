package program

// 局の種類
// nowPlaying の最初に一度だけ判定して分岐する
type StationKind string

const (
	// 番組表 + エポック再生で決まる局
	StationKindScheduled = StationKind("scheduled")

	// 外部のライブ配信を中継する局
	StationKindLive = StationKind("live")

	// 再生中のものが番組表以外の仕組みから報告される局
	StationKindOffBand = StationKind("off_band")
)

func (k StationKind) String() string {
	return string(k)
}

// 番組表を使わない局の情報
type Relay struct {
	Station Station
	Kind    StationKind

	// 表示用ラベル
	// Live のときは配信名、OffBand のときは外部から報告された現在の曲名など
	Label string
}

type Relays []Relay

// Lookup は station の Relay を返す
// 見つからなければ Scheduled な局として扱ってよい
func (rs Relays) Lookup(station Station) (Relay, bool) {
	for _, r := range rs {
		if r.Station.Equal(station) {
			return r, true
		}
	}
	return Relay{Station: station, Kind: StationKindScheduled}, false
}
