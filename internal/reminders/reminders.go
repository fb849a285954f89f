package reminders

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/shadysnails/salon-scheduler/internal/models"
	"github.com/shadysnails/salon-scheduler/internal/notify"
	"github.com/shadysnails/salon-scheduler/internal/timezone"
)

// Source is the one query the reminder job needs.
type Source interface {
	ListConfirmedForDate(ctx context.Context, date time.Time) ([]models.Appointment, error)
}

// Scheduler sends a reminder email the evening before, for every
// confirmed appointment on the next day.
type Scheduler struct {
	source   Source
	notifier notify.Notifier
	logger   zerolog.Logger
	cron     *cron.Cron
}

func NewScheduler(source Source, notifier notify.Notifier, logger zerolog.Logger) *Scheduler {
	loc := timezone.Location("")
	return &Scheduler{
		source:   source,
		notifier: notifier,
		logger:   logger,
		cron:     cron.New(cron.WithLocation(loc)),
	}
}

func (s *Scheduler) Start() error {
	// 18:00 salon time, daily.
	if _, err := s.cron.AddFunc("0 18 * * *", s.run); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tomorrow := timezone.Now().AddDate(0, 0, 1)

	apps, err := s.source.ListConfirmedForDate(ctx, tomorrow)
	if err != nil {
		s.logger.Error().Err(err).Msg("reminder query failed")
		return
	}

	for _, ap := range apps {
		s.notifier.Dispatch(notify.Event{
			Type:          notify.EventReminder,
			AppointmentID: ap.ID,
			Reference:     ap.Reference,
			CustomerName:  ap.Customer.Name,
			CustomerEmail: ap.Customer.Email,
			WorkerName:    ap.Worker.Name,
			ServiceName:   ap.Service.Name,
			Date:          ap.Date.Format("2006-01-02"),
			StartTime:     ap.StartTime,
		})
	}

	s.logger.Info().Int("count", len(apps)).Msg("reminders dispatched")
}
