package playout

// nowPlaying の結果の種類
// 「何もない」にも理由ごとに別の値を割り当てる
type Status string

const (
	// 番組表の枠で選ばれた番組のエピソードを流している
	StatusScheduled = Status("scheduled")

	// 枠がない（または枠の番組にエピソードがない）ので局全体のプレイリストを流している
	StatusUnscheduled = Status("unscheduled")

	// SIGNOFF / SIGNON の枠
	StatusOffAir = Status("off_air")

	// ライブ中継
	StatusLive = Status("live")

	// 番組表の外から報告されたものを流している
	StatusOffBand = Status("off_band")

	// プレイリストが空か合計 0 秒
	StatusNoContent = Status("no_content")

	// チャンネル番号が存在しない
	StatusUnknownChannel = Status("unknown_channel")
)

func (s Status) String() string {
	return string(s)
}

// Terminal は番組表・エポック再生のどちらの結果でもないものかどうか
func (s Status) Terminal() bool {
	switch s {
	case StatusScheduled, StatusUnscheduled:
		return false
	}
	return true
}
