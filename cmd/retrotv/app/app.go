package app

import (
	"context"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sobadon/retrotv/domain/repository"
	"github.com/sobadon/retrotv/infrastructures/configfile"
	"github.com/sobadon/retrotv/infrastructures/relay"
	"github.com/sobadon/retrotv/infrastructures/sqlite"
	"github.com/sobadon/retrotv/infrastructures/statefile"
	"github.com/sobadon/retrotv/infrastructures/tsv"
	"github.com/sobadon/retrotv/internal/timeutil"
	"github.com/sobadon/retrotv/usecase"
)

// App は各コマンドが使う usecase 一式
type App struct {
	Config   Config
	Location *time.Location

	mu       sync.RWMutex
	snapshot *usecase.Snapshot

	loader usecase.Loader
	db     *sqlx.DB
}

// Open は設定に従ってリポジトリをつなぎ、Snapshot を 1 回読み込む
func Open(ctx context.Context, config Config) (*App, error) {
	loc, err := timeutil.Location(config.Timezone)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:   config,
		Location: loc,
	}

	overridePersistence, err := a.overridePersistence()
	if err != nil {
		return nil, err
	}

	a.loader = usecase.NewLoader(
		configfile.New(config.ConfigPath),
		overridePersistence,
		tsv.NewChannelDirectory(config.ChannelsPath),
		tsv.NewPlaylistSource(config.MediaDir),
		relay.New(config.LiveConfigPath, config.OffBand(), config.OffBandMetaDir),
	)

	if err := a.Reload(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) overridePersistence() (repository.OverridePersistence, error) {
	if a.Config.OverrideBackend != BackendSqlite {
		return statefile.NewOverride(a.Config.StatePath), nil
	}

	db, err := sqlite.NewDB(a.Config.SqlitePath)
	if err != nil {
		return nil, err
	}
	if err := sqlite.Setup(db); err != nil {
		db.Close()
		return nil, err
	}
	a.db = db
	return sqlite.New(db), nil
}

// Reload は Snapshot を読み直す
// 失敗したときは前の Snapshot のまま
func (a *App) Reload(ctx context.Context) error {
	snapshot, err := a.loader.Load(ctx)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.snapshot = snapshot
	a.mu.Unlock()
	return nil
}

// Snapshot は最後に読み込めた Snapshot
func (a *App) Snapshot() *usecase.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot
}

func (a *App) Resolver() usecase.Resolver {
	return usecase.NewResolver(a.Snapshot(), a.Location)
}

// Editor は上書きの編集用
// sqlite のときは変更履歴も残す
func (a *App) Editor() usecase.Editor {
	var (
		overridePersistence repository.OverridePersistence
		journal             repository.ScheduleJournal
	)
	if a.db != nil {
		c := sqlite.New(a.db)
		overridePersistence = c
		journal = c
	} else {
		overridePersistence = statefile.NewOverride(a.Config.StatePath)
	}
	snapshot := a.Snapshot()
	return usecase.NewEditor(overridePersistence, journal, snapshot.Defaults, snapshot.Shows)
}

func (a *App) StatusWriter() *statefile.StatusWriter {
	return statefile.NewStatusWriter(a.Config.StatusPath)
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
