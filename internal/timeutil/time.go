package timeutil

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sobadon/retrotv/internal/errutil"
)

// Location は IANA のタイムゾーン名から *time.Location を返す
// 空文字のときはマシンのローカルタイムを使う（放送機器側の時計に合わせる）
func Location(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrTimeParse, err.Error())
	}
	return loc, nil
}
