package appointment

import (
	"context"
	"time"

	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
	"github.com/shadysnails/salon-scheduler/internal/httperr"
)

// checkSlot resolves the worker's schedule for the date and asserts
// that a booking of durationMin starting at startMin fits. excludeID
// removes the appointment's own row from the overlap set on updates.
//
// The fit itself is domain.SlotFits, the same predicate the
// availability list is built from.
func checkSlot(
	ctx context.Context,
	repo domain.Repository,
	tpl domain.WeekTemplate,
	workerID uint,
	date time.Time,
	startMin int,
	durationMin int,
	excludeID uint,
) error {

	blocked, err := repo.GetBlockedDate(ctx, workerID, date)
	if err != nil {
		return err
	}

	row, err := repo.GetScheduleForDay(ctx, workerID, domain.DayOfWeek(date))
	if err != nil {
		return err
	}

	sched, err := domain.ResolveDaySchedule(blocked, row, date, tpl)
	if err != nil {
		return err
	}

	if sched.Blocked {
		return httperr.ErrBusiness("date_blocked")
	}
	if !sched.Working {
		return httperr.ErrBusiness("outside_working_hours")
	}
	if startMin < sched.Start {
		return httperr.ErrBusiness("outside_working_hours")
	}
	// Window bounds alone first, so callers can tell "runs past
	// closing" apart from a genuine overlap.
	if !domain.SlotFits(startMin, durationMin, sched.End, nil, nil) {
		return httperr.ErrBusiness("outside_working_hours")
	}

	existing, err := repo.ListDayAppointments(ctx, workerID, date, excludeID)
	if err != nil {
		return err
	}

	windows, err := appointmentWindows(existing)
	if err != nil {
		return err
	}

	if !domain.SlotFits(startMin, durationMin, sched.End, sched.Break, windows) {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}
