package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shadysnails/salon-scheduler/internal/db"
	"github.com/shadysnails/salon-scheduler/internal/httperr"
	"github.com/shadysnails/salon-scheduler/internal/models"
)

func testRepo(t *testing.T) *AppointmentGormRepository {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))

	return NewAppointmentGormRepository(gdb)
}

func seedDB(t *testing.T, r *AppointmentGormRepository) {
	t.Helper()
	require.NoError(t, r.db.Create(&models.Worker{Name: "Shady", Active: true}).Error)
	require.NoError(t, r.db.Create(&models.Service{WorkerID: 1, Name: "Manicure", DurationMin: 60, Active: true}).Error)
	require.NoError(t, r.db.Create(&models.Customer{Name: "Dana", Email: "dana@example.com"}).Error)
}

func testDate() time.Time {
	return time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
}

func makeAppointment(ref, start, end, status string) *models.Appointment {
	return &models.Appointment{
		Reference:  ref,
		WorkerID:   1,
		CustomerID: 1,
		ServiceID:  1,
		Date:       testDate(),
		StartTime:  start,
		EndTime:    end,
		Status:     status,
	}
}

func TestCreateAppointmentIfFree(t *testing.T) {
	r := testRepo(t)
	seedDB(t, r)
	ctx := context.Background()

	first := makeAppointment("ref-1", "10:00:00", "11:00:00", "confirmed")
	require.NoError(t, r.CreateAppointmentIfFree(ctx, first))
	assert.NotZero(t, first.ID)

	// Overlapping booking loses.
	overlap := makeAppointment("ref-2", "10:30:00", "11:30:00", "pending")
	err := r.CreateAppointmentIfFree(ctx, overlap)
	assert.Equal(t, "time_conflict", httperr.BusinessCode(err))

	// Back to back is fine.
	adjacent := makeAppointment("ref-3", "11:00:00", "12:00:00", "pending")
	assert.NoError(t, r.CreateAppointmentIfFree(ctx, adjacent))
}

func TestCreateAppointmentIgnoresCancelledRows(t *testing.T) {
	r := testRepo(t)
	seedDB(t, r)
	ctx := context.Background()

	cancelled := makeAppointment("ref-1", "10:00:00", "11:00:00", "cancelled")
	require.NoError(t, r.db.Create(cancelled).Error)

	ap := makeAppointment("ref-2", "10:00:00", "11:00:00", "pending")
	assert.NoError(t, r.CreateAppointmentIfFree(ctx, ap))
}

func TestUpdateAppointmentIfFreeExcludesSelf(t *testing.T) {
	r := testRepo(t)
	seedDB(t, r)
	ctx := context.Background()

	ap := makeAppointment("ref-1", "10:00:00", "11:00:00", "confirmed")
	require.NoError(t, r.CreateAppointmentIfFree(ctx, ap))
	other := makeAppointment("ref-2", "15:00:00", "16:00:00", "confirmed")
	require.NoError(t, r.CreateAppointmentIfFree(ctx, other))

	// Same window, same row: no self conflict.
	ap.Notes = "updated"
	assert.NoError(t, r.UpdateAppointmentIfFree(ctx, ap))

	// Moving onto the other booking conflicts.
	ap.StartTime = "15:30:00"
	ap.EndTime = "16:30:00"
	err := r.UpdateAppointmentIfFree(ctx, ap)
	assert.Equal(t, "time_conflict", httperr.BusinessCode(err))
}

func TestListDayAppointments(t *testing.T) {
	r := testRepo(t)
	seedDB(t, r)
	ctx := context.Background()

	require.NoError(t, r.CreateAppointmentIfFree(ctx, makeAppointment("ref-1", "14:00:00", "15:00:00", "confirmed")))
	require.NoError(t, r.CreateAppointmentIfFree(ctx, makeAppointment("ref-2", "09:00:00", "10:00:00", "pending")))
	cancelled := makeAppointment("ref-3", "11:00:00", "12:00:00", "cancelled")
	require.NoError(t, r.db.Create(cancelled).Error)

	apps, err := r.ListDayAppointments(ctx, 1, testDate(), 0)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "09:00:00", apps[0].StartTime)
	assert.Equal(t, "14:00:00", apps[1].StartTime)

	apps, err = r.ListDayAppointments(ctx, 1, testDate(), apps[0].ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "14:00:00", apps[0].StartTime)
}

func TestScheduleLookups(t *testing.T) {
	r := testRepo(t)
	seedDB(t, r)
	ctx := context.Background()

	row, err := r.GetScheduleForDay(ctx, 1, 2)
	require.NoError(t, err)
	assert.Nil(t, row)

	require.NoError(t, r.db.Create(&models.WorkerSchedule{
		WorkerID: 1, DayOfWeek: 2, IsWorking: true,
		StartTime: "10:00:00", EndTime: "18:00:00",
	}).Error)

	row, err = r.GetScheduleForDay(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "10:00:00", row.StartTime)

	block, err := r.GetBlockedDate(ctx, 1, testDate())
	require.NoError(t, err)
	assert.Nil(t, block)

	require.NoError(t, r.db.Create(&models.BlockedDate{
		WorkerID: 1, Date: testDate(), Reason: "Vacation",
	}).Error)

	block, err = r.GetBlockedDate(ctx, 1, testDate())
	require.NoError(t, err)
	require.NotNil(t, block)
	assert.Equal(t, "Vacation", block.Reason)
}

func TestMaterializeCustomerFromUser(t *testing.T) {
	r := testRepo(t)
	seedDB(t, r)
	ctx := context.Background()

	require.NoError(t, r.db.Create(&models.User{
		Name: "Lee", Email: "lee@example.com", PasswordHash: "x", Phone: "555-0101",
	}).Error)

	c, err := r.MaterializeCustomerFromUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Lee", c.Name)

	// Second call reuses the row instead of duplicating it.
	again, err := r.MaterializeCustomerFromUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, c.ID, again.ID)

	// A user sharing an email with an existing customer maps onto it.
	require.NoError(t, r.db.Create(&models.User{
		Name: "Dana Account", Email: "dana@example.com", PasswordHash: "x",
	}).Error)
	existing, err := r.MaterializeCustomerFromUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(1), existing.ID)
}

func TestListAppointmentsForPeriod(t *testing.T) {
	r := testRepo(t)
	seedDB(t, r)
	ctx := context.Background()

	require.NoError(t, r.CreateAppointmentIfFree(ctx, makeAppointment("ref-1", "10:00:00", "11:00:00", "confirmed")))

	later := makeAppointment("ref-2", "10:00:00", "11:00:00", "confirmed")
	later.Date = testDate().AddDate(0, 1, 0)
	require.NoError(t, r.CreateAppointmentIfFree(ctx, later))

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	apps, err := r.ListAppointmentsForPeriod(ctx, 1, from, to)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "ref-1", apps[0].Reference)
	assert.Equal(t, "Dana", apps[0].Customer.Name)
	assert.Equal(t, "Manicure", apps[0].Service.Name)
}
