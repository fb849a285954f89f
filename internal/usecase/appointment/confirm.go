package appointment

import (
	"context"

	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
	"github.com/shadysnails/salon-scheduler/internal/httperr"
	"github.com/shadysnails/salon-scheduler/internal/models"
	"github.com/shadysnails/salon-scheduler/internal/notify"
)

type ConfirmAppointment struct {
	repo     domain.Repository
	notifier notify.Notifier
}

func NewConfirmAppointment(repo domain.Repository, notifier notify.Notifier) *ConfirmAppointment {
	return &ConfirmAppointment{repo: repo, notifier: notifier}
}

func (uc *ConfirmAppointment) Execute(
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

	if err := domain.Confirm(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(eventFor(ap, notify.EventConfirmed))

	return ap, nil
}
