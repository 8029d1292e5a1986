//go:generate mockgen -source=$GOFILE -destination ../../testdata/mock/domain/$GOPACKAGE/$GOFILE
package repository

import (
	"context"

	"github.com/sobadon/retrotv/domain/model/channel"
	"github.com/sobadon/retrotv/domain/model/playout"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/schedule"
)

// 設定ファイル由来の変更されない番組表と番組一覧
type ScheduleConfig interface {
	// 返されるエラー
	// - errutil.ErrConfigRead
	// - errutil.ErrConfigDecode
	Load(ctx context.Context) (schedule.Weekly, []program.Show, error)
}

// 編集された番組表（上書き）の永続化
type OverridePersistence interface {
	// 保存されたものがなければ空の Weekly を返す
	// 返されるエラー
	// - errutil.ErrOverrideRead
	// - errutil.ErrOverrideDecode
	Load(ctx context.Context) (schedule.Weekly, error)

	// 上書き全体を置き換える
	// 読み手が書きかけの状態を見ることはない
	Save(ctx context.Context, overrides schedule.Weekly) error
}

// 変更の記録
type ScheduleJournal interface {
	Record(ctx context.Context, event schedule.Event) error
}

type ChannelDirectory interface {
	List(ctx context.Context) (channel.Directory, error)
}

type PlaylistSource interface {
	// プレイリストがない局は空を返す
	Load(ctx context.Context, station program.Station) (playout.Playlist, error)
}

// ライブ中継や番組表外の局
type RelaySource interface {
	List(ctx context.Context) (program.Relays, error)
}
