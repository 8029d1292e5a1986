package tsv

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/retrotv/domain/model/channel"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/repository"
	"github.com/sobadon/retrotv/internal/errutil"
)

type channelClient struct {
	path string
}

// NewChannelDirectory は number<TAB>station<TAB>enabled(1|0) 形式の channels.tsv を読む
func NewChannelDirectory(path string) repository.ChannelDirectory {
	return &channelClient{
		path: path,
	}
}

// List はファイルがなければ空の一覧を返す
// 返されるエラー
// - errutil.ErrChannelsRead
func (c *channelClient) List(ctx context.Context) (channel.Directory, error) {
	records, ok, err := readFile(c.path)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrChannelsRead, err.Error())
	}
	if !ok {
		log.Ctx(ctx).Debug().Msgf("no channel directory (path = %s)", c.path)
		return channel.Directory{}, nil
	}

	directory := channel.Directory{}
	for _, record := range records {
		if len(record) < 3 {
			log.Ctx(ctx).Warn().Msgf("skip channel line (fields = %d): %v", len(record), record)
			continue
		}
		number, err := strconv.Atoi(record[0])
		if err != nil {
			log.Ctx(ctx).Warn().Msgf("skip channel line (number = %s): %v", record[0], err)
			continue
		}
		directory = append(directory, channel.Channel{
			Number:  number,
			Station: program.Station(record[1]),
			Enabled: record[2] == "1",
		})
	}
	return directory, nil
}
