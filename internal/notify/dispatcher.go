package notify

import (
	"github.com/rs/zerolog"

	"github.com/shadysnails/salon-scheduler/internal/metrics"
)

type EventType string

const (
	EventCreated   EventType = "appointment_created"
	EventUpdated   EventType = "appointment_updated"
	EventCancelled EventType = "appointment_cancelled"
	EventConfirmed EventType = "appointment_confirmed"
	EventCompleted EventType = "appointment_completed"
	EventReminder  EventType = "appointment_reminder"
)

type Event struct {
	Type          EventType
	AppointmentID uint
	Reference     string

	CustomerName  string
	CustomerEmail string
	WorkerName    string
	ServiceName   string

	Date      string
	StartTime string
}

// Notifier is the capability the booking core depends on. Dispatch must
// never block and must never fail the calling operation.
type Notifier interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	mailer *Mailer
	logger zerolog.Logger
	queue  chan Event
}

func NewDispatcher(mailer *Mailer, logger zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if ev.CustomerEmail == "" {
			d.logger.Debug().
				Str("event", string(ev.Type)).
				Uint("appointment_id", ev.AppointmentID).
				Msg("notification skipped, no recipient")
			continue
		}

		subject, body := render(ev)
		if err := d.mailer.Send(ev.CustomerEmail, subject, body); err != nil {
			metrics.IncNotificationFailed()
			d.logger.Error().Err(err).
				Str("event", string(ev.Type)).
				Uint("appointment_id", ev.AppointmentID).
				Msg("notification failed")
			continue
		}

		metrics.IncNotificationSent()
		d.logger.Info().
			Str("event", string(ev.Type)).
			Uint("appointment_id", ev.AppointmentID).
			Msg("notification sent")
	}
}

// Dispatch enqueues without blocking. A full queue drops the event;
// booking mutations must never wait on email.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn().
			Str("event", string(ev.Type)).
			Msg("notification queue full, dropping event")
	}
}

func (d *Dispatcher) Close() {
	close(d.queue)
}
