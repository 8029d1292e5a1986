package relay

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/repository"
	"github.com/sobadon/retrotv/internal/errutil"
)

// youtube_channels.json の 1 局分
type liveChannel struct {
	Name string `json:"name"`
}

type client struct {
	liveConfigPath  string
	offBandStations []program.Station
	offBandMetaDir  string
}

// New は番組表を使わない局の一覧を組み立てる
// - ライブ中継: liveConfigPath の {"STATION": {"name": "..."}}
// - 番組表外: offBandStations の局、ラベルは <offBandMetaDir>/<局名の小文字>_meta の artist<TAB>title
func New(liveConfigPath string, offBandStations []program.Station, offBandMetaDir string) repository.RelaySource {
	return &client{
		liveConfigPath:  liveConfigPath,
		offBandStations: offBandStations,
		offBandMetaDir:  offBandMetaDir,
	}
}

// List は設定がなければ空を返す
// 返されるエラー
// - errutil.ErrRelayRead
func (c *client) List(ctx context.Context) (program.Relays, error) {
	relays := program.Relays{}

	// 番組表外の局を先に並べるので、ライブ中継と重なったら番組表外が勝つ
	for _, station := range c.offBandStations {
		relays = append(relays, program.Relay{
			Station: station,
			Kind:    program.StationKindOffBand,
			Label:   c.offBandLabel(ctx, station),
		})
	}

	live, err := c.loadLive(ctx)
	if err != nil {
		return relays, err
	}
	return append(relays, live...), nil
}

func (c *client) loadLive(ctx context.Context) (program.Relays, error) {
	if c.liveConfigPath == "" {
		return nil, nil
	}

	body, err := os.ReadFile(c.liveConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Ctx(ctx).Debug().Msgf("no live relay config (path = %s)", c.liveConfigPath)
			return nil, nil
		}
		return nil, errors.Wrap(errutil.ErrRelayRead, err.Error())
	}

	var channels map[string]liveChannel
	if err := json.Unmarshal(body, &channels); err != nil {
		return nil, errors.Wrap(errutil.ErrRelayRead, err.Error())
	}

	var relays program.Relays
	for station, ch := range channels {
		name := ch.Name
		if name == "" {
			name = strings.ToUpper(station)
		}
		relays = append(relays, program.Relay{
			Station: program.Station(station),
			Kind:    program.StationKindLive,
			Label:   name + " (LIVE)",
		})
	}
	sort.Slice(relays, func(i, j int) bool {
		return relays[i].Station < relays[j].Station
	})
	return relays, nil
}

// offBandLabel は "artist - title" を返す
// メタデータがない・どちらかが空なら空文字（表示側で局名にする）
func (c *client) offBandLabel(ctx context.Context, station program.Station) string {
	if c.offBandMetaDir == "" {
		return ""
	}

	path := filepath.Join(c.offBandMetaDir, strings.ToLower(station.String())+"_meta")
	body, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Ctx(ctx).Warn().Msgf("failed to read off-band metadata (station = %s): %v", station, err)
		}
		return ""
	}

	parts := strings.Split(strings.TrimSpace(string(body)), "\t")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return ""
	}
	return parts[0] + " - " + parts[1]
}
