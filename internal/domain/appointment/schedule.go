package appointment

import (
	"time"

	"github.com/shadysnails/salon-scheduler/internal/models"
)

// WeekTemplate is the default weekly schedule applied when a worker has
// no explicit WorkerSchedule row for a day. It is injected from
// configuration so deployments can override it.
type WeekTemplate struct {
	Working [7]bool // Monday=0 .. Sunday=6
	Start   int
	End     int
}

// DefaultWeekTemplate is Monday–Saturday 09:00–20:00, Sunday off.
func DefaultWeekTemplate() WeekTemplate {
	var working [7]bool
	for day := 0; day < 6; day++ {
		working[day] = true
	}
	return WeekTemplate{
		Working: working,
		Start:   9 * 60,
		End:     20 * 60,
	}
}

// DaySchedule is the resolved availability window for one worker/date.
type DaySchedule struct {
	Working bool
	Start   int
	End     int
	Break   *Window

	Blocked     bool
	BlockReason string
}

// ResolveDaySchedule turns the stored state for one worker/date into a
// DaySchedule. A blocked date short-circuits everything else; an
// explicit schedule row is used verbatim; otherwise the template
// decides.
func ResolveDaySchedule(
	blocked *models.BlockedDate,
	row *models.WorkerSchedule,
	date time.Time,
	tpl WeekTemplate,
) (DaySchedule, error) {

	if blocked != nil {
		return DaySchedule{Blocked: true, BlockReason: blocked.Reason}, nil
	}

	if row == nil {
		day := DayOfWeek(date)
		return DaySchedule{
			Working: tpl.Working[day],
			Start:   tpl.Start,
			End:     tpl.End,
		}, nil
	}

	if !row.IsWorking {
		return DaySchedule{}, nil
	}

	start, err := ParseClock(row.StartTime)
	if err != nil {
		return DaySchedule{}, err
	}
	end, err := ParseClock(row.EndTime)
	if err != nil {
		return DaySchedule{}, err
	}

	ds := DaySchedule{Working: true, Start: start, End: end}

	if row.BreakStart != "" && row.BreakEnd != "" {
		bs, err := ParseClock(row.BreakStart)
		if err != nil {
			return DaySchedule{}, err
		}
		be, err := ParseClock(row.BreakEnd)
		if err != nil {
			return DaySchedule{}, err
		}
		ds.Break = &Window{Start: bs, End: be}
	}

	return ds, nil
}
