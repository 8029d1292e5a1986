package timeofday

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sobadon/retrotv/internal/errutil"
)

// 0:00 からの経過分
// "HH:MM" の文字列比較と同じ順序になる
type Time int

const (
	Midnight = Time(0)

	// 24:00
	// どの有効な時刻よりも大きい、終了時刻専用の番兵
	EndOfDay = Time(24 * 60)
)

func New(hour, minute int) Time {
	return Time(hour*60 + minute)
}

// FromTime は t の（t のロケーションにおける）時刻を分単位で返す
// 秒以下は切り捨て
func FromTime(t time.Time) Time {
	return New(t.Hour(), t.Minute())
}

func (t Time) Hour() int {
	return int(t) / 60
}

func (t Time) Minute() int {
	return int(t) % 60
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Parse は開始時刻 "HH:MM" を解釈する
// 00:00 から 23:59 まで
// 返されるエラー
// - errutil.ErrInvalidTime
func Parse(s string) (Time, error) {
	t, err := parse(s)
	if err != nil {
		return 0, err
	}
	if t >= EndOfDay {
		return 0, errors.Wrapf(errutil.ErrInvalidTime, "start must be before 24:00 (got %q)", s)
	}
	return t, nil
}

// ParseEnd は終了時刻を解釈する
// 空文字・"00:00"・"24:00" はいずれも 1 日の終わり（EndOfDay）
// 返されるエラー
// - errutil.ErrInvalidTime
func ParseEnd(s string) (Time, error) {
	if strings.TrimSpace(s) == "" {
		return EndOfDay, nil
	}
	t, err := parse(s)
	if err != nil {
		return 0, err
	}
	if t == Midnight {
		return EndOfDay, nil
	}
	return t, nil
}

func parse(s string) (Time, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, errors.Wrapf(errutil.ErrInvalidTime, "want HH:MM (got %q)", s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, errors.Wrap(errutil.ErrInvalidTime, err.Error())
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, errors.Wrap(errutil.ErrInvalidTime, err.Error())
	}

	if hour < 0 || minute < 0 || minute > 59 || hour > 24 || (hour == 24 && minute != 0) {
		return 0, errors.Wrapf(errutil.ErrInvalidTime, "out of range (got %q)", s)
	}

	return New(hour, minute), nil
}
