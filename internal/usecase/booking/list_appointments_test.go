package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/hammam97-h/barber-booking/internal/domain/booking"
	"github.com/hammam97-h/barber-booking/internal/models"
)

func seedAt(t *testing.T, repo *fakeRepo, userID uint, start time.Time, status domain.Status) *models.Appointment {
	t.Helper()

	ap := &models.Appointment{
		UserID:          userID,
		ServiceID:       1,
		AppointmentDate: start,
		EndTime:         start.Add(30 * time.Minute),
		Status:          string(status),
		Service:         models.Service{Name: "Haircut", DurationMinutes: 30, Price: 10},
		User:            models.User{Name: "Omar", Phone: "+15551234567"},
	}
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))
	return ap
}

func newListUC(repo *fakeRepo, now time.Time) *ListAppointments {
	uc := NewListAppointments(repo)
	uc.now = func() time.Time { return now }
	return uc
}

func TestListByUser(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.Local)

	past := seedAt(t, repo, 7, now.Add(-48*time.Hour), domain.StatusCompleted)
	future := seedAt(t, repo, 7, now.Add(48*time.Hour), domain.StatusPending)
	seedAt(t, repo, 8, now.Add(96*time.Hour), domain.StatusPending)

	uc := newListUC(repo, now)

	all, err := uc.ByUser(context.Background(), 7, false)
	require.NoError(t, err)
	require.Len(t, all, 2)

	upcoming, err := uc.ByUser(context.Background(), 7, true)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, future.ID, upcoming[0].ID)
	assert.NotEqual(t, past.ID, upcoming[0].ID)
}

func TestListViewsCarryServiceAndUser(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.Local)
	seedAt(t, repo, 7, now.Add(24*time.Hour), domain.StatusPending)

	uc := newListUC(repo, now)
	views, err := uc.All(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, "Haircut", v.ServiceName)
	assert.Equal(t, 30, v.DurationMinutes)
	assert.Equal(t, 10, v.Price)
	assert.Equal(t, "Omar", v.UserName)
	assert.Equal(t, "+15551234567", v.UserPhone)
}

func TestListUpcomingExcludesOnlyPast(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.Local)

	past := seedAt(t, repo, 7, now.Add(-24*time.Hour), domain.StatusConfirmed)
	cancelled := seedAt(t, repo, 7, now.Add(24*time.Hour), domain.StatusPending)
	cancelled.Status = string(domain.StatusCancelled)
	require.NoError(t, repo.UpdateAppointment(context.Background(), cancelled))
	kept := seedAt(t, repo, 7, now.Add(72*time.Hour), domain.StatusConfirmed)

	uc := newListUC(repo, now)
	views, err := uc.Upcoming(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	// cancelled appointments stay visible in the admin upcoming list;
	// only rows already in the past drop out
	ids := []uint{views[0].ID, views[1].ID}
	assert.Contains(t, ids, cancelled.ID)
	assert.Contains(t, ids, kept.ID)
	assert.NotContains(t, ids, past.ID)
}

func TestListPending(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.Local)

	pending := seedAt(t, repo, 7, now.Add(24*time.Hour), domain.StatusPending)
	seedAt(t, repo, 7, now.Add(72*time.Hour), domain.StatusConfirmed)

	uc := newListUC(repo, now)
	views, err := uc.Pending(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, pending.ID, views[0].ID)
}
