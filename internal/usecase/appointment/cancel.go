package appointment

import (
	"context"
	"time"

	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
	"github.com/shadysnails/salon-scheduler/internal/httperr"
	"github.com/shadysnails/salon-scheduler/internal/models"
	"github.com/shadysnails/salon-scheduler/internal/notify"
	"github.com/shadysnails/salon-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo     domain.Repository
	notifier notify.Notifier
	now      func() time.Time
}

func NewCancelAppointment(repo domain.Repository, notifier notify.Notifier) *CancelAppointment {
	return &CancelAppointment{repo: repo, notifier: notifier, now: timezone.Now}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id uint,
	actor domain.Role,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	startAt, err := appointmentStart(ap)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, uc.now(), startAt, actor); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(eventFor(ap, notify.EventCancelled))

	return ap, nil
}

// appointmentStart rebuilds the wall-clock start instant from the
// stored date and clock string, in the salon's timezone.
func appointmentStart(ap *models.Appointment) (time.Time, error) {
	startMin, err := domain.ParseClock(ap.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	loc := timezone.Location("")
	return time.Date(
		ap.Date.Year(), ap.Date.Month(), ap.Date.Day(),
		startMin/60, startMin%60, 0, 0, loc,
	), nil
}
