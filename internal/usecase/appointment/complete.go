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

type CompleteAppointment struct {
	repo     domain.Repository
	notifier notify.Notifier
	now      func() time.Time
}

func NewCompleteAppointment(repo domain.Repository, notifier notify.Notifier) *CompleteAppointment {
	return &CompleteAppointment{repo: repo, notifier: notifier, now: timezone.Now}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	id uint,
	actor domain.Role,
) (*models.Appointment, error) {

	if actor == domain.RoleCustomer {
		return nil, httperr.ErrBusiness("forbidden")
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Complete(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(eventFor(ap, notify.EventCompleted))

	return ap, nil
}
