package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	appointmentsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "salon_scheduler",
		Name:      "appointments_created_total",
		Help:      "Appointments successfully created.",
	})

	bookingConflicts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "salon_scheduler",
		Name:      "booking_conflicts_total",
		Help:      "Create/update requests rejected for time conflicts.",
	})

	notificationsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "salon_scheduler",
		Name:      "notifications_sent_total",
		Help:      "Notification emails handed to SMTP.",
	})

	notificationsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "salon_scheduler",
		Name:      "notifications_failed_total",
		Help:      "Notification emails that failed to send.",
	})
)

// Register registers all collectors. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			appointmentsCreated,
			bookingConflicts,
			notificationsSent,
			notificationsFailed,
		)
	})
}

func IncAppointmentCreated() { appointmentsCreated.Inc() }
func IncBookingConflict()    { bookingConflicts.Inc() }
func IncNotificationSent()   { notificationsSent.Inc() }
func IncNotificationFailed() { notificationsFailed.Inc() }
