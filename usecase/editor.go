package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/retrotv/domain/model/date"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/schedule"
	"github.com/sobadon/retrotv/domain/model/timeofday"
	"github.com/sobadon/retrotv/domain/repository"
	"github.com/sobadon/retrotv/internal/errutil"
)

// 番組表の上書きを編集する
// 同一プロセス内の編集は mu で直列化する
// 別プロセスからの同時編集は考慮しない（後から保存した方が勝つ）
type ucEditor struct {
	mu sync.Mutex

	overridePersistence repository.OverridePersistence
	journal             repository.ScheduleJournal

	defaults schedule.Weekly
	shows    program.Catalog

	now func() time.Time
}

// journal は nil でもよい
func NewEditor(
	overridePersistence repository.OverridePersistence,
	journal repository.ScheduleJournal,
	defaults schedule.Weekly,
	shows program.Catalog,
) *ucEditor {
	return &ucEditor{
		overridePersistence: overridePersistence,
		journal:             journal,
		defaults:            defaults,
		shows:               shows,
		now:                 time.Now,
	}
}

// Set は day・station に枠を追加する（同じ開始時刻の枠があれば置き換える）
// その日の上書きがまだなければ、デフォルトの番組表をコピーしてから編集する
// 成功すればその日の実効的な番組表を返す
func (e *ucEditor) Set(ctx context.Context, day date.Weekday, station program.Station, start string, end string, showID string) (schedule.Day, error) {
	if err := validateTarget(day, station); err != nil {
		return nil, err
	}
	block, err := schedule.NewBlock(start, end, showID)
	if err != nil {
		return nil, err
	}
	if _, ok := e.shows.Lookup(block.ShowID); !ok && !program.IsOffAirMarker(block.ShowID) {
		return nil, errors.Wrapf(errutil.ErrUnknownShow, "show id %q", block.ShowID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	overrides := e.loadOverrides(ctx)

	dayOverride, ok := overrides[day]
	if !ok || len(dayOverride) == 0 {
		// 1 つの編集でその日の他の枠が消えないように
		dayOverride = e.defaults[day].Clone()
		if dayOverride == nil {
			dayOverride = schedule.Day{}
		}
	}
	dayOverride[station] = dayOverride[station].Upsert(block)
	overrides[day] = dayOverride

	if err := e.overridePersistence.Save(ctx, overrides); err != nil {
		return nil, err
	}

	e.record(ctx, schedule.Event{
		Operation: schedule.OperationSet,
		Day:       day,
		Station:   station,
		Block:     block,
		At:        e.now(),
	})
	return schedule.Effective(e.defaults, overrides, day), nil
}

// Remove は day・station の開始時刻が start の枠を消す
// 該当する枠がなければ何もしない（保存もしない）
func (e *ucEditor) Remove(ctx context.Context, day date.Weekday, station program.Station, start string) (schedule.Day, error) {
	if err := validateTarget(day, station); err != nil {
		return nil, err
	}
	startTime, err := timeofday.Parse(start)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	overrides := e.loadOverrides(ctx)

	dayOverride, ok := overrides[day]
	if !ok {
		log.Ctx(ctx).Debug().Msgf("no override to remove (day = %s)", day)
		return schedule.Effective(e.defaults, overrides, day), nil
	}
	blocks, ok := dayOverride[station]
	if !ok {
		log.Ctx(ctx).Debug().Msgf("no override to remove (day = %s, station = %s)", day, station)
		return schedule.Effective(e.defaults, overrides, day), nil
	}

	next, removed := blocks.Remove(startTime)
	if !removed {
		log.Ctx(ctx).Debug().Msgf("no block to remove (day = %s, station = %s, start = %s)", day, station, startTime)
		return schedule.Effective(e.defaults, overrides, day), nil
	}
	dayOverride[station] = next

	if err := e.overridePersistence.Save(ctx, overrides); err != nil {
		return nil, err
	}

	e.record(ctx, schedule.Event{
		Operation: schedule.OperationRemove,
		Day:       day,
		Station:   station,
		Block:     schedule.RemovedBlock(startTime),
		At:        e.now(),
	})
	return schedule.Effective(e.defaults, overrides, day), nil
}

// Reset は上書きをすべて消す
// 以降の実効的な番組表はデフォルトと同じになる
func (e *ucEditor) Reset(ctx context.Context) (schedule.Weekly, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.overridePersistence.Save(ctx, schedule.Weekly{}); err != nil {
		return nil, err
	}

	e.record(ctx, schedule.Event{
		Operation: schedule.OperationReset,
		At:        e.now(),
	})
	return schedule.EffectiveWeek(e.defaults, nil), nil
}

// loadOverrides は保存されている上書きを読む
// 読めないときは空から編集を始める
func (e *ucEditor) loadOverrides(ctx context.Context) schedule.Weekly {
	overrides, err := e.overridePersistence.Load(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().Msgf("start from empty override state: %+v", err)
		return schedule.Weekly{}
	}
	if overrides == nil {
		return schedule.Weekly{}
	}
	return overrides.Clone()
}

// record は変更をログと journal に残す
// journal への記録に失敗しても編集そのものは成功扱い
func (e *ucEditor) record(ctx context.Context, event schedule.Event) {
	log.Ctx(ctx).Info().Msg(event.String())
	if e.journal == nil {
		return
	}
	if err := e.journal.Record(ctx, event); err != nil {
		log.Ctx(ctx).Warn().Msgf("failed to record schedule event: %+v", err)
	}
}

func validateTarget(day date.Weekday, station program.Station) error {
	if !day.Valid() {
		return errors.Wrapf(errutil.ErrInvalidDay, "unknown day %q", day)
	}
	if strings.TrimSpace(station.String()) == "" {
		return errors.Wrap(errutil.ErrInvalidBlock, "station is empty")
	}
	return nil
}
