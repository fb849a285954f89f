package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadysnails/salon-scheduler/internal/models"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestDayOfWeekMondayIsZero(t *testing.T) {
	// 2025-06-02 is a Monday, 2025-06-08 a Sunday.
	assert.Equal(t, 0, DayOfWeek(date(t, "2025-06-02")))
	assert.Equal(t, 5, DayOfWeek(date(t, "2025-06-07")))
	assert.Equal(t, 6, DayOfWeek(date(t, "2025-06-08")))
}

func TestResolveDayScheduleBlockedShortCircuits(t *testing.T) {
	blocked := &models.BlockedDate{Reason: "Vacation"}
	row := &models.WorkerSchedule{IsWorking: true, StartTime: "10:00", EndTime: "19:00"}

	ds, err := ResolveDaySchedule(blocked, row, date(t, "2025-06-02"), DefaultWeekTemplate())
	require.NoError(t, err)

	assert.True(t, ds.Blocked)
	assert.Equal(t, "Vacation", ds.BlockReason)
	assert.False(t, ds.Working)
}

func TestResolveDayScheduleDefaults(t *testing.T) {
	tpl := DefaultWeekTemplate()

	// Saturday defaults to working 09:00-20:00.
	ds, err := ResolveDaySchedule(nil, nil, date(t, "2025-06-07"), tpl)
	require.NoError(t, err)
	assert.True(t, ds.Working)
	assert.Equal(t, 9*60, ds.Start)
	assert.Equal(t, 20*60, ds.End)
	assert.Nil(t, ds.Break)

	// Sunday defaults to closed.
	ds, err = ResolveDaySchedule(nil, nil, date(t, "2025-06-08"), tpl)
	require.NoError(t, err)
	assert.False(t, ds.Working)
}

func TestResolveDayScheduleExplicitRow(t *testing.T) {
	row := &models.WorkerSchedule{
		IsWorking:  true,
		StartTime:  "10:00",
		EndTime:    "19:30",
		BreakStart: "13:00",
		BreakEnd:   "14:00",
	}

	ds, err := ResolveDaySchedule(nil, row, date(t, "2025-06-02"), DefaultWeekTemplate())
	require.NoError(t, err)

	assert.True(t, ds.Working)
	assert.Equal(t, 10*60, ds.Start)
	assert.Equal(t, 19*60+30, ds.End)
	require.NotNil(t, ds.Break)
	assert.Equal(t, Window{Start: 13 * 60, End: 14 * 60}, *ds.Break)
}

func TestResolveDayScheduleNonWorkingRow(t *testing.T) {
	row := &models.WorkerSchedule{IsWorking: false, StartTime: "09:00", EndTime: "18:00"}

	ds, err := ResolveDaySchedule(nil, row, date(t, "2025-06-02"), DefaultWeekTemplate())
	require.NoError(t, err)
	assert.False(t, ds.Working)
}

func TestResolveDayScheduleBadClockValue(t *testing.T) {
	row := &models.WorkerSchedule{IsWorking: true, StartTime: "9am", EndTime: "18:00"}

	_, err := ResolveDaySchedule(nil, row, date(t, "2025-06-02"), DefaultWeekTemplate())
	assert.Error(t, err)
}
