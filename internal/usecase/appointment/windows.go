package appointment

import (
	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
	"github.com/shadysnails/salon-scheduler/internal/models"
)

// appointmentWindows converts stored clock strings into the minute
// intervals the conflict predicate works on.
func appointmentWindows(aps []models.Appointment) ([]domain.Window, error) {
	windows := make([]domain.Window, 0, len(aps))

	for _, ap := range aps {
		start, err := domain.ParseClock(ap.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := domain.ParseClock(ap.EndTime)
		if err != nil {
			return nil, err
		}
		windows = append(windows, domain.Window{Start: start, End: end})
	}

	return windows, nil
}
