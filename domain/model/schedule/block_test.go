package schedule

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sobadon/retrotv/domain/model/timeofday"
	"github.com/sobadon/retrotv/internal/errutil"
	"github.com/sobadon/retrotv/internal/testutil"
)

func mustBlock(t *testing.T, start, end, showID string) Block {
	t.Helper()
	b, err := NewBlock(start, end, showID)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestNewBlock(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		showID  string
		want    Block
		wantErr error
	}{
		{
			name:   "通常の枠",
			start:  "08:00",
			end:    "09:00",
			showID: "MORNING",
			want:   Block{Start: timeofday.New(8, 0), End: timeofday.New(9, 0), ShowID: "MORNING"},
		},
		{
			name:   "終了が空なら 1 日の終わり",
			start:  "22:00",
			end:    "",
			showID: "LATE",
			want:   Block{Start: timeofday.New(22, 0), End: timeofday.EndOfDay, ShowID: "LATE"},
		},
		{
			name:   "00:00 から 00:00 は 1 日まるごと",
			start:  "00:00",
			end:    "00:00",
			showID: "ALLDAY",
			want:   Block{Start: timeofday.Midnight, End: timeofday.EndOfDay, ShowID: "ALLDAY"},
		},
		{
			name:    "終了が開始より前",
			start:   "10:00",
			end:     "09:00",
			showID:  "X",
			wantErr: errutil.ErrInvalidBlock,
		},
		{
			name:    "長さ 0 の枠",
			start:   "10:00",
			end:     "10:00",
			showID:  "X",
			wantErr: errutil.ErrInvalidBlock,
		},
		{
			name:    "番組 ID が空",
			start:   "10:00",
			end:     "11:00",
			showID:  "",
			wantErr: errutil.ErrInvalidBlock,
		},
		{
			name:    "開始時刻が不正",
			start:   "7am",
			end:     "11:00",
			showID:  "X",
			wantErr: errutil.ErrInvalidTime,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewBlock(tt.start, tt.end, tt.showID)
			if !testutil.ErrorsIs(err, tt.wantErr) {
				t.Errorf("NewBlock() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NewBlock() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlocks_Resolve(t *testing.T) {
	blocks := Blocks{
		mustBlock(t, "06:00", "12:00", "MORNING"),
		mustBlock(t, "09:00", "00:00", "NEWS"),
		mustBlock(t, "10:00", "10:30", "BULLETIN"),
	}

	tests := []struct {
		name   string
		t      string
		want   string
		wantOK bool
	}{
		{name: "どの枠にも入らない", t: "05:59", wantOK: false},
		{name: "開始時刻ちょうどは含む", t: "06:00", want: "MORNING", wantOK: true},
		{name: "重なっているときは開始が遅い方", t: "09:00", want: "NEWS", wantOK: true},
		{name: "さらに内側の枠が勝つ", t: "10:15", want: "BULLETIN", wantOK: true},
		{name: "終了時刻ちょうどは含まない", t: "10:30", want: "NEWS", wantOK: true},
		{name: "00:00 終了は 24:00 扱い", t: "23:59", want: "NEWS", wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, err := timeofday.Parse(tt.t)
			if err != nil {
				t.Fatal(err)
			}
			got, ok := blocks.Resolve(at)
			if ok != tt.wantOK {
				t.Fatalf("Blocks.Resolve() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.ShowID != tt.want {
				t.Errorf("Blocks.Resolve() = %v, want %v", got.ShowID, tt.want)
			}
			if !got.Covers(at) {
				t.Errorf("Blocks.Resolve() returned %+v which does not cover %s", got, at)
			}
		})
	}
}

func TestBlocks_Resolve_AllInstantsCovered(t *testing.T) {
	blocks := Blocks{
		mustBlock(t, "00:00", "06:00", "NIGHT"),
		mustBlock(t, "05:00", "07:00", "EARLY"),
		mustBlock(t, "12:00", "", "AFTERNOON"),
	}
	for m := timeofday.Midnight; m < timeofday.EndOfDay; m++ {
		got, ok := blocks.Resolve(m)
		if !ok {
			continue
		}
		if !got.Covers(m) {
			t.Fatalf("Blocks.Resolve(%s) = %+v does not cover it", m, got)
		}
		for _, b := range blocks {
			if b.Covers(m) && b.Start > got.Start {
				t.Fatalf("Blocks.Resolve(%s) = %v, but %v starts later", m, got.ShowID, b.ShowID)
			}
		}
	}
}

func TestBlocks_Upsert(t *testing.T) {
	bs := Blocks{
		mustBlock(t, "08:00", "09:00", "MORNING"),
		mustBlock(t, "12:00", "13:00", "NOON"),
	}

	got := bs.Upsert(mustBlock(t, "08:00", "10:00", "MORNING2"))
	got = got.Upsert(mustBlock(t, "06:00", "07:00", "EARLY"))

	want := Blocks{
		mustBlock(t, "06:00", "07:00", "EARLY"),
		mustBlock(t, "08:00", "10:00", "MORNING2"),
		mustBlock(t, "12:00", "13:00", "NOON"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Blocks.Upsert() mismatch (-want +got):\n%s", diff)
	}
	if bs[0].ShowID != "MORNING" {
		t.Error("Blocks.Upsert() modified the receiver")
	}
}

func TestBlocks_Remove(t *testing.T) {
	bs := Blocks{
		mustBlock(t, "08:00", "09:00", "MORNING"),
		mustBlock(t, "12:00", "13:00", "NOON"),
	}

	got, removed := bs.Remove(timeofday.New(8, 0))
	if !removed {
		t.Error("Blocks.Remove() removed = false, want true")
	}
	if diff := cmp.Diff(Blocks{mustBlock(t, "12:00", "13:00", "NOON")}, got); diff != "" {
		t.Errorf("Blocks.Remove() mismatch (-want +got):\n%s", diff)
	}

	got, removed = bs.Remove(timeofday.New(10, 0))
	if removed {
		t.Error("Blocks.Remove() removed = true, want false")
	}
	if diff := cmp.Diff(bs, got); diff != "" {
		t.Errorf("Blocks.Remove() mismatch (-want +got):\n%s", diff)
	}
}
