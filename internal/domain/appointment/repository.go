package appointment

import (
	"context"
	"time"

	"github.com/shadysnails/salon-scheduler/internal/models"
)

// Repository is everything the booking core needs from persistence.
// Catalog lookups return gorm.ErrRecordNotFound-wrapping errors from the
// infra layer; absence of optional rows (schedule, block) is nil, nil.
type Repository interface {
	// -------- Catalog --------
	GetWorker(ctx context.Context, id uint) (*models.Worker, error)

	GetService(ctx context.Context, id uint) (*models.Service, error)

	GetAdditional(ctx context.Context, id uint) (*models.Additional, error)

	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)

	// MaterializeCustomerFromUser creates a Customer mirroring the user
	// with the given id, for bookings made by an account that has never
	// been registered as a customer.
	MaterializeCustomerFromUser(ctx context.Context, userID uint) (*models.Customer, error)

	// -------- Schedule --------
	GetScheduleForDay(ctx context.Context, workerID uint, dayOfWeek int) (*models.WorkerSchedule, error)

	GetBlockedDate(ctx context.Context, workerID uint, date time.Time) (*models.BlockedDate, error)

	// -------- Appointments --------
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	// ListDayAppointments returns the non-cancelled appointments for a
	// worker and date ordered by start time, excluding excludeID when
	// non-zero.
	ListDayAppointments(ctx context.Context, workerID uint, date time.Time, excludeID uint) ([]models.Appointment, error)

	// CreateAppointmentIfFree re-checks the overlap rule inside a
	// locking transaction and inserts. Returns the time_conflict
	// business error when another booking won the slot.
	CreateAppointmentIfFree(ctx context.Context, ap *models.Appointment) error

	// UpdateAppointmentIfFree is CreateAppointmentIfFree for an
	// existing row, excluding the appointment's own id from the
	// overlap set.
	UpdateAppointmentIfFree(ctx context.Context, ap *models.Appointment) error

	// SaveAppointment persists status-only transitions.
	SaveAppointment(ctx context.Context, ap *models.Appointment) error

	ListAppointmentsForPeriod(ctx context.Context, workerID uint, from, to time.Time) ([]models.Appointment, error)
}
