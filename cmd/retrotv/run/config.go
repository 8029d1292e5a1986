package run

import "time"

// run だけが使う設定
type config struct {
	StatusInterval time.Duration `env:"STATUS_INTERVAL" envDefault:"5s"`
}
