package appointment

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
	"github.com/shadysnails/salon-scheduler/internal/httperr"
	"github.com/shadysnails/salon-scheduler/internal/models"
	"github.com/shadysnails/salon-scheduler/internal/notify"
)

// fakeRepo is an in-memory Repository with the same contract as the
// gorm implementation, including the transactional overlap re-check.
type fakeRepo struct {
	workers      map[uint]*models.Worker
	services     map[uint]*models.Service
	additionals  map[uint]*models.Additional
	customers    map[uint]*models.Customer
	users        map[uint]*models.User
	schedules    map[uint]map[int]*models.WorkerSchedule
	blocks       map[uint]map[string]*models.BlockedDate
	appointments map[uint]*models.Appointment
	nextID       uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		workers:      map[uint]*models.Worker{},
		services:     map[uint]*models.Service{},
		additionals:  map[uint]*models.Additional{},
		customers:    map[uint]*models.Customer{},
		users:        map[uint]*models.User{},
		schedules:    map[uint]map[int]*models.WorkerSchedule{},
		blocks:       map[uint]map[string]*models.BlockedDate{},
		appointments: map[uint]*models.Appointment{},
	}
}

func dateKey(t time.Time) string { return t.Format("2006-01-02") }

func (r *fakeRepo) GetWorker(_ context.Context, id uint) (*models.Worker, error) {
	w, ok := r.workers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return w, nil
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeRepo) GetAdditional(_ context.Context, id uint) (*models.Additional, error) {
	a, ok := r.additionals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *fakeRepo) GetCustomer(_ context.Context, id uint) (*models.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeRepo) MaterializeCustomerFromUser(_ context.Context, userID uint) (*models.Customer, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	r.nextID++
	c := &models.Customer{
		ID:    r.nextID,
		Name:  u.Name,
		Phone: u.Phone,
		Email: u.Email,
	}
	r.customers[c.ID] = c
	return c, nil
}

func (r *fakeRepo) GetScheduleForDay(_ context.Context, workerID uint, dayOfWeek int) (*models.WorkerSchedule, error) {
	return r.schedules[workerID][dayOfWeek], nil
}

func (r *fakeRepo) GetBlockedDate(_ context.Context, workerID uint, date time.Time) (*models.BlockedDate, error) {
	return r.blocks[workerID][dateKey(date)], nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	r.hydrate(&cp)
	return &cp, nil
}

func (r *fakeRepo) hydrate(ap *models.Appointment) {
	if c, ok := r.customers[ap.CustomerID]; ok {
		ap.Customer = *c
	}
	if w, ok := r.workers[ap.WorkerID]; ok {
		ap.Worker = *w
	}
	if s, ok := r.services[ap.ServiceID]; ok {
		ap.Service = *s
	}
}

func (r *fakeRepo) ListDayAppointments(_ context.Context, workerID uint, date time.Time, excludeID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.WorkerID != workerID || dateKey(ap.Date) != dateKey(date) {
			continue
		}
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		out = append(out, *ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (r *fakeRepo) overlaps(ap *models.Appointment, excludeID uint) bool {
	for _, other := range r.appointments {
		if other.WorkerID != ap.WorkerID || dateKey(other.Date) != dateKey(ap.Date) {
			continue
		}
		if other.Status == string(domain.StatusCancelled) {
			continue
		}
		if excludeID != 0 && other.ID == excludeID {
			continue
		}
		if ap.StartTime < other.EndTime && ap.EndTime > other.StartTime {
			return true
		}
	}
	return false
}

func (r *fakeRepo) CreateAppointmentIfFree(_ context.Context, ap *models.Appointment) error {
	if r.overlaps(ap, 0) {
		return httperr.ErrBusiness("time_conflict")
	}
	r.nextID++
	ap.ID = r.nextID
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) UpdateAppointmentIfFree(_ context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if r.overlaps(ap, ap.ID) {
		return httperr.ErrBusiness("time_conflict")
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, workerID uint, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.WorkerID != workerID {
			continue
		}
		if ap.Date.Before(from) || !ap.Date.Before(to) {
			continue
		}
		cp := *ap
		r.hydrate(&cp)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

// recorder captures dispatched events for assertions.
type recorder struct {
	events []notify.Event
}

func (rec *recorder) Dispatch(ev notify.Event) {
	rec.events = append(rec.events, ev)
}

// seedCatalog fills the repo with the fixtures most tests share: one
// active worker, a 60 minute service and a 30 minute add-on.
func seedCatalog(r *fakeRepo) {
	r.workers[1] = &models.Worker{ID: 1, Name: "Shady", Active: true}
	r.services[1] = &models.Service{ID: 1, WorkerID: 1, Name: "Manicure", DurationMin: 60, Price: 50, Active: true}
	r.additionals[1] = &models.Additional{ID: 1, Name: "Nail Art", ExtraDurationMin: 30, Price: 15, Active: true}
	r.customers[1] = &models.Customer{ID: 1, Name: "Dana", Email: "dana@example.com"}
}

func seedAppointment(r *fakeRepo, date time.Time, start, end, status string) *models.Appointment {
	r.nextID++
	ap := &models.Appointment{
		ID:         r.nextID,
		Reference:  "ref-test",
		WorkerID:   1,
		CustomerID: 1,
		ServiceID:  1,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Status:     status,
	}
	r.appointments[ap.ID] = ap
	return ap
}
