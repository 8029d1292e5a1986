package statefile

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/retrotv/domain/model/playout"
	"github.com/sobadon/retrotv/internal/errutil"
	"github.com/sobadon/retrotv/internal/fileutil"
)

type blockStatus struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	ShowID string `json:"show_id"`
}

type nowPlayingStatus struct {
	Channel  int          `json:"channel"`
	Station  string       `json:"station"`
	Status   string       `json:"status"`
	Label    string       `json:"label"`
	ShowID   string       `json:"show_id,omitempty"`
	Title    string       `json:"title,omitempty"`
	Block    *blockStatus `json:"block,omitempty"`
	Path     string       `json:"path,omitempty"`
	Offset   int64        `json:"offset"`
	Duration int64        `json:"duration"`
	Percent  float64      `json:"percent"`
}

func modelNowPlayingToNowPlayingStatus(np playout.NowPlaying) nowPlayingStatus {
	s := nowPlayingStatus{
		Channel:  np.Channel,
		Station:  np.Station.String(),
		Status:   np.Status.String(),
		Label:    np.Label,
		ShowID:   np.ShowID,
		Title:    np.Title,
		Path:     np.Path,
		Offset:   np.Offset,
		Duration: np.Duration,
		Percent:  np.Percent(),
	}
	if np.Block != nil {
		s.Block = &blockStatus{
			Start:  np.Block.Start.String(),
			End:    np.Block.EffectiveEnd().String(),
			ShowID: np.Block.ShowID,
		}
	}
	return s
}

// MarshalNowPlaying は NowPlaying 一覧を JSON にする
// CLI の now と status ファイルで同じ形を使う
func MarshalNowPlaying(nps []playout.NowPlaying) ([]byte, error) {
	statuses := make([]nowPlayingStatus, 0, len(nps))
	for _, np := range nps {
		statuses = append(statuses, modelNowPlayingToNowPlayingStatus(np))
	}
	body, err := json.MarshalIndent(statuses, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errutil.ErrJSONEncode, err.Error())
	}
	return append(body, '\n'), nil
}

type StatusWriter struct {
	path string
}

// NewStatusWriter は外部の表示側が読む「いま何が流れているか」のファイルを書く
func NewStatusWriter(path string) *StatusWriter {
	return &StatusWriter{
		path: path,
	}
}

func (w *StatusWriter) Write(ctx context.Context, nps []playout.NowPlaying) error {
	body, err := MarshalNowPlaying(nps)
	if err != nil {
		return err
	}
	if err := fileutil.WriteAtomic(w.path, body, 0644); err != nil {
		return errors.Wrap(errutil.ErrStatusWrite, err.Error())
	}
	log.Ctx(ctx).Debug().Msgf("wrote status (path = %s, channels = %d)", w.path, len(nps))
	return nil
}
