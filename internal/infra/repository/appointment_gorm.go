package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
	"github.com/shadysnails/salon-scheduler/internal/httperr"
	"github.com/shadysnails/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorker(
	ctx context.Context,
	id uint,
) (*models.Worker, error) {

	var worker models.Worker
	if err := r.db.WithContext(ctx).First(&worker, id).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetAdditional(
	ctx context.Context,
	id uint,
) (*models.Additional, error) {

	var additional models.Additional
	if err := r.db.WithContext(ctx).First(&additional, id).Error; err != nil {
		return nil, err
	}
	return &additional, nil
}

func (r *AppointmentGormRepository) GetCustomer(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// MaterializeCustomerFromUser backfills a Customer row for an account
// that books for the first time. An existing customer with the same
// email or phone is reused instead of duplicated.
func (r *AppointmentGormRepository) MaterializeCustomerFromUser(
	ctx context.Context,
	userID uint,
) (*models.Customer, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("email = ? OR (phone <> '' AND phone = ?)", user.Email, user.Phone).
		First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	customer = models.Customer{
		Name:  user.Name,
		Phone: user.Phone,
		Email: user.Email,
	}
	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// dayRange returns the half-open [midnight, next midnight) interval
// for the date, in the date's own location. Date columns are filtered
// by range rather than equality so it works the same on every dialect.
func dayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *AppointmentGormRepository) GetScheduleForDay(
	ctx context.Context,
	workerID uint,
	dayOfWeek int,
) (*models.WorkerSchedule, error) {

	var row models.WorkerSchedule
	err := r.db.WithContext(ctx).
		Where("worker_id = ? AND day_of_week = ?", workerID, dayOfWeek).
		First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *AppointmentGormRepository) GetBlockedDate(
	ctx context.Context,
	workerID uint,
	date time.Time,
) (*models.BlockedDate, error) {

	from, to := dayRange(date)

	var block models.BlockedDate
	err := r.db.WithContext(ctx).
		Where("worker_id = ? AND date >= ? AND date < ?", workerID, from, to).
		First(&block).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Worker").
		Preload("Customer").
		Preload("Service").
		Preload("Additional").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListDayAppointments(
	ctx context.Context,
	workerID uint,
	date time.Time,
	excludeID uint,
) ([]models.Appointment, error) {

	from, to := dayRange(date)

	q := r.db.WithContext(ctx).
		Where(
			"worker_id = ? AND date >= ? AND date < ? AND status <> 'cancelled'",
			workerID, from, to,
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var apps []models.Appointment
	if err := q.Order("start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// overlapCount counts live appointments whose window intersects the
// candidate's. Clock strings are zero-padded, so string comparison
// matches chronological order.
func overlapCount(tx *gorm.DB, ap *models.Appointment, excludeID uint) (int64, error) {
	from, to := dayRange(ap.Date)

	q := tx.Model(&models.Appointment{}).
		Where(
			"worker_id = ? AND date >= ? AND date < ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
			ap.WorkerID,
			from,
			to,
			ap.EndTime,
			ap.StartTime,
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

// CreateAppointmentIfFree re-checks the overlap rule inside a
// transaction before inserting, so two racing bookings cannot both
// pass the use-case level check. On Postgres the exclusion constraint
// is the final arbiter.
func (r *AppointmentGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := overlapCount(tx, ap, 0)
		if err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("time_conflict")
		}
		return tx.Create(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

func (r *AppointmentGormRepository) UpdateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := overlapCount(tx, ap, ap.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("time_conflict")
		}
		return tx.
			Omit("Worker", "Customer", "Service", "Additional").
			Save(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit("Worker", "Customer", "Service", "Additional").
		Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	workerID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where(
			"worker_id = ? AND date >= ? AND date < ?",
			workerID,
			start,
			end,
		).
		Order("date ASC, start_time ASC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// ListConfirmedForDate feeds the reminder job: every confirmed
// appointment on the date, any worker, with recipients preloaded.
func (r *AppointmentGormRepository) ListConfirmedForDate(
	ctx context.Context,
	date time.Time,
) ([]models.Appointment, error) {

	from, to := dayRange(date)

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Preload("Customer").
		Preload("Service").
		Where("date >= ? AND date < ? AND status = 'confirmed'", from, to).
		Order("start_time ASC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
