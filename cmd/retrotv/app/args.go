package app

import (
	"context"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sobadon/retrotv/domain/model/date"
	"github.com/sobadon/retrotv/domain/model/schedule"
	"github.com/sobadon/retrotv/infrastructures/scheduledto"
	"github.com/sobadon/retrotv/internal/errutil"
)

// OpenFromEnv は環境変数の設定で App を開く
func OpenFromEnv(ctx context.Context) (*App, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return Open(ctx, config)
}

// 返されるエラー
// - errutil.ErrUnknownChannel
func ParseChannel(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(errutil.ErrUnknownChannel, "channel number %q", s)
	}
	return n, nil
}

// ParseInstant は RFC 3339 の時刻を解釈する
// 空文字なら現在時刻
// 返されるエラー
// - errutil.ErrInvalidTime
func ParseInstant(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.Wrap(errutil.ErrInvalidTime, err.Error())
	}
	return t, nil
}

// Today は設定したタイムゾーンでの今日の曜日
func (a *App) Today() date.Weekday {
	return date.FromTime(time.Now().In(a.Location))
}

// WriteWeekly は番組表を上書きファイルと同じ形の JSON で書き出す
func WriteWeekly(w io.Writer, weekly schedule.Weekly) error {
	body, err := json.MarshalIndent(scheduledto.FromModel(weekly), "", "  ")
	if err != nil {
		return errors.Wrap(errutil.ErrJSONEncode, err.Error())
	}
	_, err = w.Write(append(body, '\n'))
	return err
}
