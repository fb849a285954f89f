package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
	"github.com/shadysnails/salon-scheduler/internal/httperr"
	"github.com/shadysnails/salon-scheduler/internal/metrics"
	"github.com/shadysnails/salon-scheduler/internal/models"
	"github.com/shadysnails/salon-scheduler/internal/notify"
	"github.com/shadysnails/salon-scheduler/internal/timezone"
)

type CreateAppointmentInput struct {
	WorkerID     uint
	CustomerID   uint
	ServiceID    uint
	AdditionalID *uint
	UserID       *uint
	Date         string
	StartTime    string
	Notes        string
	Actor        domain.Role
}

type CreateAppointment struct {
	repo     domain.Repository
	notifier notify.Notifier
	tpl      domain.WeekTemplate
	now      func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier notify.Notifier,
	tpl domain.WeekTemplate,
) *CreateAppointment {
	return &CreateAppointment{repo: repo, notifier: notifier, tpl: tpl, now: timezone.Now}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	loc := timezone.Location("")

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	startMin, err := domain.ParseClock(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	worker, err := uc.repo.GetWorker(ctx, in.WorkerID)
	if err != nil {
		return nil, httperr.ErrBusiness("worker_not_found")
	}
	if !worker.Active {
		return nil, httperr.ErrBusiness("worker_not_found")
	}

	duration, service, _, err := resolveDuration(ctx, uc.repo, in.ServiceID, in.AdditionalID)
	if err != nil {
		return nil, err
	}

	customer, err := uc.repo.GetCustomer(ctx, in.CustomerID)
	if err != nil {
		// Logged-in users may book before a customer record exists
		// for them. Build one from the account instead of failing.
		customer, err = uc.repo.MaterializeCustomerFromUser(ctx, in.CustomerID)
		if err != nil {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
	}

	now := uc.now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if date.Before(today) {
		return nil, httperr.ErrBusiness("past_date")
	}

	if err := checkSlot(ctx, uc.repo, uc.tpl, in.WorkerID, date, startMin, duration, 0); err != nil {
		if httperr.BusinessCode(err) == "time_conflict" {
			metrics.IncBookingConflict()
		}
		return nil, err
	}

	status := domain.StatusConfirmed
	if in.Actor == domain.RoleCustomer {
		status = domain.StatusPending
	}

	ap := &models.Appointment{
		Reference:    uuid.NewString(),
		WorkerID:     in.WorkerID,
		CustomerID:   customer.ID,
		ServiceID:    in.ServiceID,
		AdditionalID: in.AdditionalID,
		UserID:       in.UserID,
		Date:         date,
		StartTime:    domain.FormatClock(startMin),
		EndTime:      domain.FormatClock(startMin + duration),
		Status:       string(status),
		Notes:        in.Notes,
	}

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		if httperr.BusinessCode(err) == "time_conflict" {
			metrics.IncBookingConflict()
		}
		return nil, err
	}

	metrics.IncAppointmentCreated()

	evType := notify.EventCreated
	if status == domain.StatusConfirmed {
		evType = notify.EventConfirmed
	}
	uc.notifier.Dispatch(notify.Event{
		Type:          evType,
		AppointmentID: ap.ID,
		Reference:     ap.Reference,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		WorkerName:    worker.Name,
		ServiceName:   service.Name,
		Date:          ap.Date.Format("2006-01-02"),
		StartTime:     ap.StartTime,
	})

	return ap, nil
}
