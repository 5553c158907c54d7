package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/hammam97-h/barber-booking/internal/domain/booking"
	"github.com/hammam97-h/barber-booking/internal/httperr"
)

func newCreateUC(repo *fakeRepo) *CreateAppointment {
	uc := NewCreateAppointment(repo, nil, nil, nil)
	uc.now = func() time.Time {
		return time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	}
	return uc
}

func TestCreateAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, 30, true)
	uc := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:          7,
		ServiceID:       1,
		AppointmentDate: "2026-09-14T10:00",
		CustomerName:    "Omar",
		CustomerPhone:   "+15551234567",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.NotEmpty(t, ap.Reference)
	assert.Equal(t, uint(7), ap.UserID)

	wantStart := time.Date(2026, 9, 14, 10, 0, 0, 0, time.Local)
	assert.True(t, ap.AppointmentDate.Equal(wantStart))
	assert.True(t, ap.EndTime.Equal(wantStart.Add(30*time.Minute)))
}

func TestCreateAppointmentConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, 30, true)
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 1, ServiceID: 1, AppointmentDate: "2026-09-14T10:00",
	})
	require.NoError(t, err)

	// same slot again
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 2, ServiceID: 1, AppointmentDate: "2026-09-14T10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	// partial overlap
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 2, ServiceID: 1, AppointmentDate: "2026-09-14T10:15",
	})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	// back to back is fine
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 2, ServiceID: 1, AppointmentDate: "2026-09-14T10:30",
	})
	assert.NoError(t, err)
}

func TestCreateAppointmentCancelledSlotReopens(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, 30, true)
	uc := newCreateUC(repo)

	first, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 1, ServiceID: 1, AppointmentDate: "2026-09-14T10:00",
	})
	require.NoError(t, err)

	first.Status = string(domain.StatusCancelled)
	require.NoError(t, repo.UpdateAppointment(context.Background(), first))

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 2, ServiceID: 1, AppointmentDate: "2026-09-14T10:00",
	})
	assert.NoError(t, err)
}

func TestCreateAppointmentUnknownService(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 1, ServiceID: 99, AppointmentDate: "2026-09-14T10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateAppointmentInactiveServiceStillBooks(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, 30, false)
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 1, ServiceID: 1, AppointmentDate: "2026-09-14T10:00",
	})
	assert.NoError(t, err)
}

func TestCreateAppointmentBadDate(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, 30, true)
	uc := newCreateUC(repo)

	for _, in := range []string{"", "2026-09-14", "14/09/2026 10:00", "next tuesday"} {
		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			UserID: 1, ServiceID: 1, AppointmentDate: in,
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_date"), in)
	}
}

func TestParseISODateTimeAcceptedLayouts(t *testing.T) {
	want := time.Date(2026, 9, 14, 10, 0, 0, 0, time.Local)

	for _, in := range []string{
		"2026-09-14T10:00",
		"2026-09-14T10:00:00",
	} {
		got, err := parseISODateTime(in)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(want), in)
	}

	got, err := parseISODateTime(want.Format(time.RFC3339))
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}
