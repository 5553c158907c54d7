package booking

import (
	"context"
	"time"

	"github.com/hammam97-h/barber-booking/internal/audit"
	"github.com/hammam97-h/barber-booking/internal/cache"
	domain "github.com/hammam97-h/barber-booking/internal/domain/booking"
	"github.com/hammam97-h/barber-booking/internal/httperr"
	"github.com/hammam97-h/barber-booking/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	cache *cache.SlotCache
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	slotCache *cache.SlotCache,
	auditor *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		cache: slotCache,
		audit: auditor,
		now:   time.Now,
	}
}

// Execute cancels an appointment on behalf of its owner or an admin.
// Unlike the admin status machine, cancellation is unconditional: it sets
// cancelled whatever the current status, so repeating it is harmless.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actorID uint,
	actorIsAdmin bool,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if ap.UserID != actorID && !actorIsAdmin {
		return nil, httperr.ErrBusiness("forbidden")
	}

	now := uc.now()
	ap.Status = string(domain.StatusCancelled)
	ap.CancelledAt = &now

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.AppointmentDate.Format(dateFormat))

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
