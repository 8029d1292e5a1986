package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/retrotv/domain/model/date"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/schedule"
	"github.com/sobadon/retrotv/domain/model/timeofday"
	"github.com/sobadon/retrotv/domain/repository"
	"github.com/sobadon/retrotv/internal/errutil"
)

type blockSqlite struct {
	Day     string `db:"day"`
	Station string `db:"station"`
	Start   int    `db:"start"`
	End     int    `db:"end"`
	ShowID  string `db:"show_id"`
}

// 枠が 0 件になった局も「その日の上書きに出てくる局」として残すためのテーブル
type stationSqlite struct {
	Day     string `db:"day"`
	Station string `db:"station"`
}

type eventSqlite struct {
	UUID      string    `db:"uuid"`
	Operation string    `db:"operation"`
	Day       string    `db:"day"`
	Station   string    `db:"station"`
	Start     int       `db:"start"`
	End       int       `db:"end"`
	ShowID    string    `db:"show_id"`
	At        time.Time `db:"at"`
}

func blockSqliteToModelBlock(b blockSqlite) schedule.Block {
	return schedule.Block{
		Start:  timeofday.Time(b.Start),
		End:    timeofday.Time(b.End),
		ShowID: b.ShowID,
	}
}

func modelBlockToBlockSqlite(day date.Weekday, station program.Station, b schedule.Block) blockSqlite {
	return blockSqlite{
		Day:     day.String(),
		Station: station.String(),
		Start:   int(b.Start),
		End:     int(b.EffectiveEnd()),
		ShowID:  b.ShowID,
	}
}

func modelEventToEventSqlite(event schedule.Event) eventSqlite {
	var end int
	// remove / reset のときは End を持たない
	if event.Operation == schedule.OperationSet {
		end = int(event.Block.EffectiveEnd())
	}
	return eventSqlite{
		UUID:      uuid.NewString(),
		Operation: event.Operation.String(),
		Day:       event.Day.String(),
		Station:   event.Station.String(),
		Start:     int(event.Block.Start),
		End:       end,
		ShowID:    event.Block.ShowID,
		At:        event.At,
	}
}

func NewDB(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseOpen, err.Error())
	}
	return db, nil
}

// テーブル作成
func Setup(db *sqlx.DB) error {
	_, err := db.Exec(`create table if not exists override_stations (
		day text not null,
		station text not null,
		created_at timestamp not null default (datetime('now', 'localtime')),
		primary key (day, station)
	);`)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	_, err = db.Exec(`create table if not exists override_blocks (
		day text not null,
		station text not null,
		start integer not null,
		end integer not null,
		show_id text not null,
		created_at timestamp not null default (datetime('now', 'localtime')),
		unique (day, station, start)
	);`)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	_, err = db.Exec(`create table if not exists schedule_events (
		uuid text primary key,
		operation text not null,
		day text not null,
		station text not null,
		start integer not null,
		end integer not null,
		show_id text not null,
		at timestamp not null
	);`)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	return nil
}

type client struct {
	DB *sqlx.DB
}

func New(db *sqlx.DB) *client {
	return &client{
		DB: db,
	}
}

var (
	_ repository.OverridePersistence = (*client)(nil)
	_ repository.ScheduleJournal     = (*client)(nil)
)

// Load は保存されている上書きを返す
// 何も保存されていなければ空の Weekly
func (c *client) Load(ctx context.Context) (schedule.Weekly, error) {
	var stationsSqlite []stationSqlite
	err := c.DB.SelectContext(ctx, &stationsSqlite, `select day, station from override_stations`)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	var blocksSqlite []blockSqlite
	err = c.DB.SelectContext(ctx, &blocksSqlite, `select day, station, start, end, show_id from override_blocks order by day, station, start`)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	overrides := schedule.Weekly{}
	dayOf := func(s string) (schedule.Day, error) {
		day, err := date.ParseWeekday(s)
		if err != nil {
			return nil, errors.Wrap(errutil.ErrOverrideDecode, err.Error())
		}
		d, ok := overrides[day]
		if !ok {
			d = schedule.Day{}
			overrides[day] = d
		}
		return d, nil
	}

	for _, s := range stationsSqlite {
		d, err := dayOf(s.Day)
		if err != nil {
			return nil, err
		}
		station := program.Station(s.Station)
		if _, ok := d[station]; !ok {
			d[station] = schedule.Blocks{}
		}
	}

	for _, b := range blocksSqlite {
		d, err := dayOf(b.Day)
		if err != nil {
			return nil, err
		}
		station := program.Station(b.Station)
		d[station] = append(d[station], blockSqliteToModelBlock(b))
	}

	return overrides, nil
}

// Save は上書きを 1 トランザクションでまるごと置き換える
func (c *client) Save(ctx context.Context, overrides schedule.Weekly) error {
	tx, err := c.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `delete from override_blocks`); err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	if _, err := tx.ExecContext(ctx, `delete from override_stations`); err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	for day, d := range overrides {
		for station, blocks := range d {
			_, err := tx.NamedExecContext(ctx,
				`insert into override_stations (day, station) values (:day, :station)`,
				stationSqlite{Day: day.String(), Station: station.String()})
			if err != nil {
				return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
			}

			for _, b := range blocks {
				_, err := tx.NamedExecContext(ctx,
					`insert into override_blocks (day, station, start, end, show_id)
					values
					(:day, :station, :start, :end, :show_id)`,
					modelBlockToBlockSqlite(day, station, b))
				if err != nil {
					return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	log.Ctx(ctx).Debug().Msgf("saved override state (days = %d)", len(overrides))
	return nil
}

// Record は上書きへの変更を履歴として残す
func (c *client) Record(ctx context.Context, event schedule.Event) error {
	_, err := c.DB.NamedExecContext(ctx,
		`insert into schedule_events (uuid, operation, day, station, start, end, show_id, at)
		values
		(:uuid, :operation, :day, :station, :start, :end, :show_id, :at)`,
		modelEventToEventSqlite(event))
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return nil
}

// Events は記録された変更を古い順に返す
func (c *client) Events(ctx context.Context) ([]schedule.Event, error) {
	var eventsSqlite []eventSqlite
	err := c.DB.SelectContext(ctx, &eventsSqlite, `select uuid, operation, day, station, start, end, show_id, at from schedule_events order by at, rowid`)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	var events []schedule.Event
	for _, e := range eventsSqlite {
		events = append(events, schedule.Event{
			Operation: schedule.Operation(e.Operation),
			Day:       date.Weekday(e.Day),
			Station:   program.Station(e.Station),
			Block: schedule.Block{
				Start:  timeofday.Time(e.Start),
				End:    timeofday.Time(e.End),
				ShowID: e.ShowID,
			},
			At: e.At,
		})
	}
	return events, nil
}
