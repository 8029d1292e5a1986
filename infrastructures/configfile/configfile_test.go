package configfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sobadon/retrotv/domain/model/date"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/schedule"
	"github.com/sobadon/retrotv/domain/model/timeofday"
	"github.com/sobadon/retrotv/internal/errutil"
	"github.com/sobadon/retrotv/internal/testutil"
)

const testConfigJSON = `{
  "default_schedule": {
    "monday": {
      "WEATHER": [
        {"start": "08:00", "end": "08:30", "show_id": "MORNING2"},
        {"start": "06:00", "end": "08:00", "show_id": "MORNING"}
      ]
    },
    "sunday": {
      "WEATHER": [
        {"start": "23:00", "end": "00:00", "show_id": "SIGNOFF"}
      ]
    }
  },
  "shows": [
    {"id": "MORNING", "title": "Morning Weather", "path": "/media/channels/WEATHER/morning/", "station": "WEATHER"},
    {"id": "MORNING2", "title": "Extended Morning Weather", "path": "/media/channels/WEATHER/morning/", "station": "WEATHER"},
    {"id": "", "title": "broken"}
  ]
}`

const testConfigYAML = `default_schedule:
  monday:
    WEATHER:
      - start: "08:00"
        end: "08:30"
        show_id: MORNING2
      - start: "06:00"
        end: "08:00"
        show_id: MORNING
  sunday:
    WEATHER:
      - start: "23:00"
        end: "00:00"
        show_id: SIGNOFF
shows:
  - id: MORNING
    title: Morning Weather
    path: /media/channels/WEATHER/morning/
    station: WEATHER
  - id: MORNING2
    title: Extended Morning Weather
    path: /media/channels/WEATHER/morning/
    station: WEATHER
  - id: ""
    title: broken
`

var (
	wantDefaults = schedule.Weekly{
		date.Monday: schedule.Day{
			"WEATHER": schedule.Blocks{
				{Start: timeofday.New(6, 0), End: timeofday.New(8, 0), ShowID: "MORNING"},
				{Start: timeofday.New(8, 0), End: timeofday.New(8, 30), ShowID: "MORNING2"},
			},
		},
		date.Sunday: schedule.Day{
			"WEATHER": schedule.Blocks{
				{Start: timeofday.New(23, 0), End: timeofday.EndOfDay, ShowID: "SIGNOFF"},
			},
		},
	}
	wantShows = []program.Show{
		{ID: "MORNING", Title: "Morning Weather", Path: "/media/channels/WEATHER/morning/", Station: "WEATHER"},
		{ID: "MORNING2", Title: "Extended Morning Weather", Path: "/media/channels/WEATHER/morning/", Station: "WEATHER"},
	}
)

func writeFile(t *testing.T, name string, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func Test_client_Load(t *testing.T) {
	tests := []struct {
		name         string
		path         func(t *testing.T) string
		wantDefaults schedule.Weekly
		wantShows    []program.Show
		wantErr      error
	}{
		{
			name:         "JSON",
			path:         func(t *testing.T) string { return writeFile(t, "schedule_config.json", testConfigJSON) },
			wantDefaults: wantDefaults,
			wantShows:    wantShows,
			wantErr:      nil,
		},
		{
			name:         "YAML",
			path:         func(t *testing.T) string { return writeFile(t, "schedule_config.yaml", testConfigYAML) },
			wantDefaults: wantDefaults,
			wantShows:    wantShows,
			wantErr:      nil,
		},
		{
			name:    "ファイルがない",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.json") },
			wantErr: errutil.ErrConfigRead,
		},
		{
			name:    "JSON が壊れている",
			path:    func(t *testing.T) string { return writeFile(t, "schedule_config.json", `{"default_schedule": `) },
			wantErr: errutil.ErrConfigDecode,
		},
		{
			name: "枠が壊れている",
			path: func(t *testing.T) string {
				return writeFile(t, "schedule_config.json", `{"default_schedule": {"monday": {"NEWS": [{"start": "25:00", "end": "", "show_id": "NEWS"}]}}}`)
			},
			wantErr: errutil.ErrConfigDecode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.path(t))
			gotDefaults, gotShows, err := c.Load(context.Background())
			if !testutil.ErrorsIs(err, tt.wantErr) {
				t.Errorf("client.Load() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if diff := cmp.Diff(tt.wantDefaults, gotDefaults); diff != "" {
				t.Errorf("client.Load() defaults mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantShows, gotShows); diff != "" {
				t.Errorf("client.Load() shows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
