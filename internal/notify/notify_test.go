package notify

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/shadysnails/salon-scheduler/internal/config"
)

func sampleEvent(t EventType) Event {
	return Event{
		Type:          t,
		AppointmentID: 1,
		Reference:     "ref-1",
		CustomerName:  "Dana",
		CustomerEmail: "dana@example.com",
		WorkerName:    "Shady",
		ServiceName:   "Manicure",
		Date:          "2025-06-03",
		StartTime:     "10:00:00",
	}
}

func TestRenderPerEventType(t *testing.T) {
	cases := []struct {
		eventType EventType
		subject   string
	}{
		{EventCreated, "We received your booking request"},
		{EventConfirmed, "Your appointment is confirmed"},
		{EventUpdated, "Your appointment was updated"},
		{EventCancelled, "Your appointment was cancelled"},
		{EventCompleted, "Thank you for your visit"},
		{EventReminder, "Reminder: your appointment is tomorrow"},
	}

	for _, tc := range cases {
		subject, body := render(sampleEvent(tc.eventType))
		assert.Equal(t, tc.subject, subject, string(tc.eventType))
		assert.Contains(t, body, "Dana", string(tc.eventType))
	}
}

func TestRenderReminderIncludesDetails(t *testing.T) {
	_, body := render(sampleEvent(EventReminder))
	assert.Contains(t, body, "Manicure")
	assert.Contains(t, body, "Shady")
	assert.Contains(t, body, "2025-06-03")
	assert.Contains(t, body, "10:00:00")
}

func TestMailerDisabledIsNoop(t *testing.T) {
	m := NewMailer(&config.Config{})
	assert.False(t, m.Enabled())
	assert.NoError(t, m.Send("dana@example.com", "subject", "<p>body</p>"))
}

func TestDispatchDoesNotBlockWhenQueueFull(t *testing.T) {
	d := &Dispatcher{
		mailer: NewMailer(&config.Config{}),
		logger: zerolog.Nop(),
		queue:  make(chan Event), // unbuffered, never drained
	}

	// Must return immediately instead of waiting for a consumer.
	d.Dispatch(sampleEvent(EventCreated))
}
