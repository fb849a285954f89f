package appointment

import (
	"time"

	"github.com/shadysnails/salon-scheduler/internal/httperr"
	"github.com/shadysnails/salon-scheduler/internal/models"
)

// CancelCutoff is how close to the start a customer may still cancel.
// Workers and admins are exempt.
const CancelCutoff = 2 * time.Hour

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusConfirmed)
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Cancel soft-deletes: the appointment keeps all its fields and only
// flips to cancelled, so history and revenue reporting survive.
// startAt is the appointment's start as a full timestamp in the salon's
// timezone.
func Cancel(ap *models.Appointment, now, startAt time.Time, actor Role) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	if actor == RoleCustomer && now.After(startAt.Add(-CancelCutoff)) {
		return httperr.ErrBusiness("cancel_cutoff")
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}
