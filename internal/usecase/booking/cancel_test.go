package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/hammam97-h/barber-booking/internal/domain/booking"
	"github.com/hammam97-h/barber-booking/internal/httperr"
	"github.com/hammam97-h/barber-booking/internal/models"
)

func seedAppointment(t *testing.T, repo *fakeRepo, userID uint, status domain.Status) *models.Appointment {
	t.Helper()

	start := time.Date(2026, 9, 14, 10, 0, 0, 0, time.Local)
	ap := &models.Appointment{
		UserID:          userID,
		ServiceID:       1,
		AppointmentDate: start,
		EndTime:         start.Add(30 * time.Minute),
		Status:          string(status),
	}
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))
	return ap
}

func TestCancelByOwner(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(t, repo, 7, domain.StatusPending)

	uc := NewCancelAppointment(repo, nil, nil)
	got, err := uc.Execute(context.Background(), 7, false, ap.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	require.NotNil(t, got.CancelledAt)

	stored, err := repo.GetAppointmentByID(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), stored.Status)
}

func TestCancelByAdmin(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(t, repo, 7, domain.StatusConfirmed)

	uc := NewCancelAppointment(repo, nil, nil)
	got, err := uc.Execute(context.Background(), 99, true, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)
}

func TestCancelByStrangerForbidden(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(t, repo, 7, domain.StatusPending)

	uc := NewCancelAppointment(repo, nil, nil)
	_, err := uc.Execute(context.Background(), 8, false, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	// untouched
	stored, err := repo.GetAppointmentByID(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), stored.Status)
}

func TestCancelMissingAppointment(t *testing.T) {
	repo := newFakeRepo()

	uc := NewCancelAppointment(repo, nil, nil)
	_, err := uc.Execute(context.Background(), 7, false, 42)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCancelAlreadyCancelledIsHarmless(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(t, repo, 7, domain.StatusCancelled)

	uc := NewCancelAppointment(repo, nil, nil)
	got, err := uc.Execute(context.Background(), 7, false, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)
}
