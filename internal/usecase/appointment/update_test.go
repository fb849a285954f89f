package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
	"github.com/shadysnails/salon-scheduler/internal/httperr"
	"github.com/shadysnails/salon-scheduler/internal/models"
	"github.com/shadysnails/salon-scheduler/internal/notify"
	"github.com/shadysnails/salon-scheduler/internal/timezone"
)

func updateFixture() (*fakeRepo, *recorder, *UpdateAppointment) {
	repo := newFakeRepo()
	seedCatalog(repo)
	rec := &recorder{}
	uc := NewUpdateAppointment(repo, rec, domain.DefaultWeekTemplate())
	uc.now = func() time.Time {
		return time.Date(2025, 6, 2, 8, 0, 0, 0, timezone.Location(""))
	}
	return repo, rec, uc
}

func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint    { return &v }

func TestUpdateAppointmentMoveTime(t *testing.T) {
	repo, rec, uc := updateFixture()
	ap := seedAppointment(repo, tuesday(), "10:00:00", "11:00:00", string(domain.StatusConfirmed))

	out, _, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:        ap.ID,
		StartTime: strPtr("15:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "15:00:00", out.StartTime)
	assert.Equal(t, "16:00:00", out.EndTime)
	require.Len(t, rec.events, 1)
	assert.Equal(t, notify.EventUpdated, rec.events[0].Type)
}

func TestUpdateAppointmentKeepOwnSlot(t *testing.T) {
	repo, _, uc := updateFixture()
	ap := seedAppointment(repo, tuesday(), "10:00:00", "11:00:00", string(domain.StatusConfirmed))

	// Changing only the notes re-validates the same window. The
	// appointment must not conflict with itself.
	out, _, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:    ap.ID,
		Notes: strPtr("bring reference photo"),
	})
	require.NoError(t, err)
	assert.Equal(t, "bring reference photo", out.Notes)
	assert.Equal(t, "10:00:00", out.StartTime)
}

func TestUpdateAppointmentConflictWithOther(t *testing.T) {
	repo, _, uc := updateFixture()
	ap := seedAppointment(repo, tuesday(), "10:00:00", "11:00:00", string(domain.StatusConfirmed))
	seedAppointment(repo, tuesday(), "15:00:00", "16:00:00", string(domain.StatusConfirmed))

	_, _, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:        ap.ID,
		StartTime: strPtr("15:30"),
	})
	assert.Equal(t, "time_conflict", httperr.BusinessCode(err))
}

func TestUpdateAppointmentTerminalState(t *testing.T) {
	repo, _, uc := updateFixture()
	ap := seedAppointment(repo, tuesday(), "10:00:00", "11:00:00", string(domain.StatusCancelled))

	_, _, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:        ap.ID,
		StartTime: strPtr("15:00"),
	})
	assert.Equal(t, "invalid_state", httperr.BusinessCode(err))
}

func TestUpdateAppointmentSwitchServiceRecomputesEnd(t *testing.T) {
	repo, _, uc := updateFixture()
	repo.services[2] = &models.Service{ID: 2, WorkerID: 1, Name: "Polish Change", DurationMin: 30, Active: true}
	ap := seedAppointment(repo, tuesday(), "10:00:00", "11:00:00", string(domain.StatusConfirmed))

	out, _, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:        ap.ID,
		ServiceID: uintPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "10:30:00", out.EndTime)
}

func TestUpdateAppointmentSwitchServiceNotifiesNewName(t *testing.T) {
	repo, rec, uc := updateFixture()
	repo.services[2] = &models.Service{ID: 2, WorkerID: 1, Name: "Polish Change", DurationMin: 30, Active: true}
	ap := seedAppointment(repo, tuesday(), "10:00:00", "11:00:00", string(domain.StatusConfirmed))

	// The email must name the service booked after the change, not
	// the one the appointment was loaded with.
	_, _, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:        ap.ID,
		ServiceID: uintPtr(2),
	})
	require.NoError(t, err)
	require.Len(t, rec.events, 1)
	assert.Equal(t, notify.EventUpdated, rec.events[0].Type)
	assert.Equal(t, "Polish Change", rec.events[0].ServiceName)
}

func TestUpdateAppointmentReturnsVacatedDate(t *testing.T) {
	repo, _, uc := updateFixture()
	ap := seedAppointment(repo, tuesday(), "10:00:00", "11:00:00", string(domain.StatusConfirmed))

	out, prevDate, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:   ap.ID,
		Date: strPtr("2025-06-05"),
	})
	require.NoError(t, err)
	assert.True(t, prevDate.Equal(tuesday()), "previous date should be the day the appointment left")
	assert.Equal(t, "2025-06-05", out.Date.Format("2006-01-02"))
}

func TestUpdateAppointmentAddAndRemoveAdditional(t *testing.T) {
	repo, _, uc := updateFixture()
	ap := seedAppointment(repo, tuesday(), "10:00:00", "11:00:00", string(domain.StatusConfirmed))

	out, _, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:           ap.ID,
		AdditionalID: uintPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, "11:30:00", out.EndTime)

	// Zero removes the add-on.
	out, _, err = uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:           ap.ID,
		AdditionalID: uintPtr(0),
	})
	require.NoError(t, err)
	assert.Nil(t, out.AdditionalID)
	assert.Equal(t, "11:00:00", out.EndTime)
}

func TestUpdateAppointmentPastDate(t *testing.T) {
	repo, _, uc := updateFixture()
	ap := seedAppointment(repo, tuesday(), "10:00:00", "11:00:00", string(domain.StatusConfirmed))

	_, _, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:   ap.ID,
		Date: strPtr("2025-06-01"),
	})
	assert.Equal(t, "past_date", httperr.BusinessCode(err))
}

func TestUpdateAppointmentMoveToBlockedDate(t *testing.T) {
	repo, _, uc := updateFixture()
	ap := seedAppointment(repo, tuesday(), "10:00:00", "11:00:00", string(domain.StatusConfirmed))
	wednesday := tuesday().AddDate(0, 0, 1)
	repo.blocks[1] = map[string]*models.BlockedDate{
		dateKey(wednesday): {WorkerID: 1, Date: wednesday, Reason: "Holiday"},
	}

	_, _, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:   ap.ID,
		Date: strPtr("2025-06-04"),
	})
	assert.Equal(t, "date_blocked", httperr.BusinessCode(err))
}
