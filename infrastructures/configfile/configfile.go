package configfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/schedule"
	"github.com/sobadon/retrotv/domain/repository"
	"github.com/sobadon/retrotv/infrastructures/scheduledto"
	"github.com/sobadon/retrotv/internal/errutil"
	"gopkg.in/yaml.v3"
)

type showConfig struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Path    string `json:"path" yaml:"path"`
	Station string `json:"station" yaml:"station"`
}

type config struct {
	DefaultSchedule scheduledto.Weekly `json:"default_schedule" yaml:"default_schedule"`
	Shows           []showConfig       `json:"shows" yaml:"shows"`
}

func showConfigToModelShow(s showConfig) program.Show {
	return program.Show{
		ID:      s.ID,
		Title:   s.Title,
		Path:    s.Path,
		Station: program.Station(s.Station),
	}
}

type client struct {
	path string
}

// New は path の設定ファイル（デフォルトの番組表と番組一覧）を読む
// 拡張子が .yaml / .yml なら YAML、それ以外は JSON
func New(path string) repository.ScheduleConfig {
	return &client{
		path: path,
	}
}

// 返されるエラー
// - errutil.ErrConfigRead
// - errutil.ErrConfigDecode
func (c *client) Load(ctx context.Context) (schedule.Weekly, []program.Show, error) {
	body, err := os.ReadFile(c.path)
	if err != nil {
		return nil, nil, errors.Wrap(errutil.ErrConfigRead, err.Error())
	}

	var cfg config
	switch strings.ToLower(filepath.Ext(c.path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(body, &cfg)
	default:
		err = json.Unmarshal(body, &cfg)
	}
	if err != nil {
		return nil, nil, errors.Wrap(errutil.ErrConfigDecode, err.Error())
	}

	defaults, err := scheduledto.ToModel(cfg.DefaultSchedule)
	if err != nil {
		return nil, nil, errors.Wrap(errutil.ErrConfigDecode, err.Error())
	}

	var shows []program.Show
	for _, s := range cfg.Shows {
		if s.ID == "" {
			log.Ctx(ctx).Warn().Msgf("skip show without id (title = %s)", s.Title)
			continue
		}
		shows = append(shows, showConfigToModelShow(s))
	}

	log.Ctx(ctx).Debug().Msgf("loaded config (path = %s, days = %d, shows = %d)", c.path, len(defaults), len(shows))
	return defaults, shows, nil
}
