package tsv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sobadon/retrotv/domain/model/channel"
)

func Test_channelClient_List(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		noFile  bool
		want    channel.Directory
		wantErr bool
	}{
		{
			name: "コメントと壊れた行は飛ばす",
			body: "# number\tstation\tenabled\n" +
				"2\tWEATHER\t1\n" +
				"\n" +
				"4\tNEWS\t0\n" +
				"x\tBROKEN\t1\n" +
				"5\tSHORT\n" +
				"  6\tMTV\t1  \n",
			want: channel.Directory{
				{Number: 2, Station: "WEATHER", Enabled: true},
				{Number: 4, Station: "NEWS", Enabled: false},
				{Number: 6, Station: "MTV", Enabled: true},
			},
			wantErr: false,
		},
		{
			name:    "ファイルがなければ空",
			noFile:  true,
			want:    channel.Directory{},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "channels.tsv")
			if !tt.noFile {
				if err := os.WriteFile(path, []byte(tt.body), 0600); err != nil {
					t.Fatal(err)
				}
			}

			got, err := NewChannelDirectory(path).List(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("channelClient.List() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("channelClient.List() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
