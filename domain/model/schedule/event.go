package schedule

import (
	"fmt"
	"time"

	"github.com/sobadon/retrotv/domain/model/date"
	"github.com/sobadon/retrotv/domain/model/program"
	"github.com/sobadon/retrotv/domain/model/timeofday"
)

type Operation string

const (
	OperationSet    = Operation("set")
	OperationRemove = Operation("remove")
	OperationReset  = Operation("reset")
)

func (o Operation) String() string {
	return string(o)
}

// 上書きへの変更 1 回分
type Event struct {
	Operation Operation
	Day       date.Weekday
	Station   program.Station

	// reset のときは空
	Block Block

	At time.Time
}

// String はスケジューラのログに出す 1 行
func (e Event) String() string {
	switch e.Operation {
	case OperationSet:
		return fmt.Sprintf("SET %s %s %s-%s → %s", e.Day, e.Station, e.Block.Start, e.Block.EffectiveEnd(), e.Block.ShowID)
	case OperationRemove:
		return fmt.Sprintf("REMOVE %s %s @ %s", e.Day, e.Station, e.Block.Start)
	case OperationReset:
		return "RESET schedule to defaults"
	}
	return fmt.Sprintf("%s %s %s", e.Operation, e.Day, e.Station)
}

// RemovedBlock は remove の Event 用に開始時刻だけ入れた Block を返す
func RemovedBlock(start timeofday.Time) Block {
	return Block{Start: start}
}
