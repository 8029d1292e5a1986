package app

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/internal/errutil"
	"github.com/sobadon/retrotv/internal/logutil"
)

const (
	BackendJSON   = "json"
	BackendSqlite = "sqlite"
)

type Config struct {
	ConfigPath      string        `env:"CONFIG_PATH" envDefault:"config/schedule_config.json"`
	StatePath       string        `env:"STATE_PATH" envDefault:"state/schedule_state.json"`
	ChannelsPath    string        `env:"CHANNELS_PATH" envDefault:"state/channels.tsv"`
	MediaDir        string        `env:"MEDIA_DIR" envDefault:"media"`
	LiveConfigPath  string        `env:"LIVE_CONFIG_PATH" envDefault:"config/youtube_channels.json"`
	OffBandStations []string      `env:"OFFBAND_STATIONS" envSeparator:","`
	OffBandMetaDir  string        `env:"OFFBAND_META_DIR" envDefault:"state"`
	SkipStations    []string      `env:"SKIP_STATIONS" envSeparator:"," envDefault:"EPG,bumpers,commercials"`
	OverrideBackend string        `env:"OVERRIDE_BACKEND" envDefault:"json"`
	SqlitePath      string        `env:"SQLITE_PATH" envDefault:"state/retrotv.sqlite3"`
	Timezone        string        `env:"TIMEZONE" envDefault:"Local"`
	Refresh         time.Duration `env:"REFRESH" envDefault:"1m"`
	StatusPath      string        `env:"STATUS_PATH" envDefault:"state/now_playing.json"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig は RTV_ で始まる環境変数から設定を読む
func LoadConfig() (Config, error) {
	log := logutil.NewLogger()

	var config Config
	err := env.Parse(&config, env.Options{
		Prefix: "RTV_",
		OnSet: func(tag string, value interface{}, isDefault bool) {
			log.Debug().Msgf("Set %s to %v (default? %v)", tag, value, isDefault)
		},
	})
	if err != nil {
		return Config{}, errors.Wrap(errutil.ErrConfigRead, err.Error())
	}

	switch config.OverrideBackend {
	case BackendJSON, BackendSqlite:
	default:
		return Config{}, errors.Wrapf(errutil.ErrConfigRead, "unknown override backend %q", config.OverrideBackend)
	}

	logutil.SetLevel(config.LogLevel)
	return config, nil
}

func stations(names []string) []program.Station {
	var ss []program.Station
	for _, name := range names {
		if name == "" {
			continue
		}
		ss = append(ss, program.Station(name))
	}
	return ss
}

func (c Config) OffBand() []program.Station {
	return stations(c.OffBandStations)
}

func (c Config) Skip() []program.Station {
	return stations(c.SkipStations)
}
