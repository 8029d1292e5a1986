package usecase

import (
	"github.com/sobadon/retrotv/domain/model/channel"
	"github.com/sobadon/retrotv/domain/model/playout"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/schedule"
)

// ある時点で読み込んだ設定・状態一式
// 読み込んだあとは変更しない（リロードするときは新しい Snapshot を作る）
type Snapshot struct {
	Defaults  schedule.Weekly
	Overrides schedule.Weekly
	Shows     program.Catalog
	Channels  channel.Directory
	Playlists map[program.Station]playout.Playlist
	Relays    program.Relays

	// 上書きの読み込みに失敗したときの原因
	// このとき Overrides は空で、デフォルトの番組表で動いている
	OverrideErr error
}
