package appointment

import (
	"github.com/shadysnails/salon-scheduler/internal/models"
	"github.com/shadysnails/salon-scheduler/internal/notify"
)

// eventFor assumes ap was loaded with its associations preloaded.
func eventFor(ap *models.Appointment, t notify.EventType) notify.Event {
	return notify.Event{
		Type:          t,
		AppointmentID: ap.ID,
		Reference:     ap.Reference,
		CustomerName:  ap.Customer.Name,
		CustomerEmail: ap.Customer.Email,
		WorkerName:    ap.Worker.Name,
		ServiceName:   ap.Service.Name,
		Date:          ap.Date.Format("2006-01-02"),
		StartTime:     ap.StartTime,
	}
}
