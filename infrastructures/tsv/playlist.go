package tsv

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/retrotv/domain/model/playout"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/repository"
	"github.com/sobadon/retrotv/internal/errutil"
)

type playlistClient struct {
	mediaDir string
}

// NewPlaylistSource は <mediaDir>/channels/<station>/index.tsv（path<TAB>seconds）を読む
func NewPlaylistSource(mediaDir string) repository.PlaylistSource {
	return &playlistClient{
		mediaDir: mediaDir,
	}
}

func (c *playlistClient) indexPath(station program.Station) string {
	return filepath.Join(c.mediaDir, "channels", station.String(), "index.tsv")
}

// Load は index.tsv がなければ空のプレイリストを返す
// 秒数が読めない・負の行は飛ばす
// 返されるエラー
// - errutil.ErrPlaylistRead
func (c *playlistClient) Load(ctx context.Context, station program.Station) (playout.Playlist, error) {
	path := c.indexPath(station)
	records, ok, err := readFile(path)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrPlaylistRead, err.Error())
	}
	if !ok {
		log.Ctx(ctx).Debug().Msgf("no playlist (station = %s, path = %s)", station, path)
		return nil, nil
	}

	var playlist playout.Playlist
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		duration, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			log.Ctx(ctx).Warn().Msgf("skip playlist entry (station = %s, path = %s): %v", station, record[0], err)
			continue
		}
		if duration < 0 {
			log.Ctx(ctx).Warn().Msgf("skip playlist entry with negative duration (station = %s, path = %s, duration = %d)", station, record[0], duration)
			continue
		}
		playlist = append(playlist, playout.Entry{
			Path:     record[0],
			Duration: duration,
		})
	}
	return playlist, nil
}
