package statefile

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/retrotv/domain/model/schedule"
	"github.com/sobadon/retrotv/domain/repository"
	"github.com/sobadon/retrotv/infrastructures/scheduledto"
	"github.com/sobadon/retrotv/internal/errutil"
	"github.com/sobadon/retrotv/internal/fileutil"
)

type overrideState struct {
	Schedule scheduledto.Weekly `json:"schedule"`
}

type overrideClient struct {
	path string
}

// NewOverride は上書きを path の JSON ファイルに保存する
func NewOverride(path string) repository.OverridePersistence {
	return &overrideClient{
		path: path,
	}
}

// Load はファイルがなければ空の Weekly を返す（上書きなし）
// 返されるエラー
// - errutil.ErrOverrideRead
// - errutil.ErrOverrideDecode
func (c *overrideClient) Load(ctx context.Context) (schedule.Weekly, error) {
	body, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Ctx(ctx).Debug().Msgf("no override state (path = %s)", c.path)
			return schedule.Weekly{}, nil
		}
		return nil, errors.Wrap(errutil.ErrOverrideRead, err.Error())
	}

	var state overrideState
	if err := json.Unmarshal(body, &state); err != nil {
		return nil, errors.Wrap(errutil.ErrOverrideDecode, err.Error())
	}

	overrides, err := scheduledto.ToModel(state.Schedule)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrOverrideDecode, err.Error())
	}
	return overrides, nil
}

// Save は一時ファイルに書いてから置き換える
// 書き込み途中で落ちても前の状態か新しい状態のどちらかが残る
func (c *overrideClient) Save(ctx context.Context, overrides schedule.Weekly) error {
	body, err := json.MarshalIndent(overrideState{Schedule: scheduledto.FromModel(overrides)}, "", "  ")
	if err != nil {
		return errors.Wrap(errutil.ErrJSONEncode, err.Error())
	}

	if err := fileutil.WriteAtomic(c.path, append(body, '\n'), 0644); err != nil {
		return errors.Wrap(errutil.ErrOverrideWrite, err.Error())
	}
	log.Ctx(ctx).Debug().Msgf("saved override state (path = %s, days = %d)", c.path, len(overrides))
	return nil
}
