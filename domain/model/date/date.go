package date

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sobadon/retrotv/internal/errutil"
)

// 曜日
// 番組表は週単位で繰り返すので、日付ではなく曜日で扱う
type Weekday string

const (
	Monday    = Weekday("monday")
	Tuesday   = Weekday("tuesday")
	Wednesday = Weekday("wednesday")
	Thursday  = Weekday("thursday")
	Friday    = Weekday("friday")
	Saturday  = Weekday("saturday")
	Sunday    = Weekday("sunday")
)

// 月曜始まり
var Week = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (w Weekday) String() string {
	return string(w)
}

func (w Weekday) Valid() bool {
	for _, d := range Week {
		if d == w {
			return true
		}
	}
	return false
}

// ParseWeekday は大文字小文字を区別せずに曜日を解釈する
// 返されるエラー
// - errutil.ErrInvalidDay
func ParseWeekday(s string) (Weekday, error) {
	w := Weekday(strings.ToLower(strings.TrimSpace(s)))
	if !w.Valid() {
		return "", errors.Wrapf(errutil.ErrInvalidDay, "unknown day %q", s)
	}
	return w, nil
}

// FromTime は t の（t のロケーションにおける）曜日を返す
func FromTime(t time.Time) Weekday {
	// time.Weekday は日曜始まり
	return Week[(int(t.Weekday())+6)%7]
}
