package appointment

import (
	"context"
	"time"

	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
	"github.com/shadysnails/salon-scheduler/internal/httperr"
	"github.com/shadysnails/salon-scheduler/internal/metrics"
	"github.com/shadysnails/salon-scheduler/internal/models"
	"github.com/shadysnails/salon-scheduler/internal/notify"
	"github.com/shadysnails/salon-scheduler/internal/timezone"
)

// UpdateAppointmentInput carries only the fields the caller wants to
// change. AdditionalID follows the catalog convention: nil leaves the
// add-on alone, zero removes it.
type UpdateAppointmentInput struct {
	ID           uint
	Date         *string
	StartTime    *string
	ServiceID    *uint
	AdditionalID *uint
	Notes        *string
}

type UpdateAppointment struct {
	repo     domain.Repository
	notifier notify.Notifier
	tpl      domain.WeekTemplate
	now      func() time.Time
}

func NewUpdateAppointment(
	repo domain.Repository,
	notifier notify.Notifier,
	tpl domain.WeekTemplate,
) *UpdateAppointment {
	return &UpdateAppointment{repo: repo, notifier: notifier, tpl: tpl, now: timezone.Now}
}

// Execute applies the requested changes and returns the updated
// appointment along with the date it previously occupied, so callers
// can refresh availability for a vacated day as well.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, time.Time, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, time.Time{}, httperr.ErrBusiness("appointment_not_found")
	}
	if domain.IsTerminal(domain.Status(ap.Status)) {
		return nil, time.Time{}, httperr.ErrBusiness("invalid_state")
	}

	loc := timezone.Location("")
	prevDate := ap.Date

	date := ap.Date
	if in.Date != nil {
		date, err = time.ParseInLocation("2006-01-02", *in.Date, loc)
		if err != nil {
			return nil, time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
		}
		now := uc.now().In(loc)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		if date.Before(today) {
			return nil, time.Time{}, httperr.ErrBusiness("past_date")
		}
	}

	startMin, err := domain.ParseClock(ap.StartTime)
	if err != nil {
		return nil, time.Time{}, err
	}
	if in.StartTime != nil {
		startMin, err = domain.ParseClock(*in.StartTime)
		if err != nil {
			return nil, time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
		}
	}

	serviceID := ap.ServiceID
	if in.ServiceID != nil {
		serviceID = *in.ServiceID
	}

	additionalID := ap.AdditionalID
	if in.AdditionalID != nil {
		if *in.AdditionalID == 0 {
			additionalID = nil
		} else {
			additionalID = in.AdditionalID
		}
	}

	// The length is always recomputed from the current catalog, so a
	// service edited since booking takes effect here.
	duration, service, additional, err := resolveDuration(ctx, uc.repo, serviceID, additionalID)
	if err != nil {
		return nil, time.Time{}, err
	}

	if err := checkSlot(ctx, uc.repo, uc.tpl, ap.WorkerID, date, startMin, duration, ap.ID); err != nil {
		if httperr.BusinessCode(err) == "time_conflict" {
			metrics.IncBookingConflict()
		}
		return nil, time.Time{}, err
	}

	ap.Date = date
	ap.StartTime = domain.FormatClock(startMin)
	ap.EndTime = domain.FormatClock(startMin + duration)
	ap.ServiceID = serviceID
	ap.AdditionalID = additionalID
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	// The preloaded associations predate the merge. Swap in the
	// catalog rows just resolved so the notification names the
	// service actually booked now.
	ap.Service = *service
	ap.Additional = additional

	if err := uc.repo.UpdateAppointmentIfFree(ctx, ap); err != nil {
		if httperr.BusinessCode(err) == "time_conflict" {
			metrics.IncBookingConflict()
		}
		return nil, time.Time{}, err
	}

	uc.notifier.Dispatch(eventFor(ap, notify.EventUpdated))

	return ap, prevDate, nil
}
