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

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	cache *cache.SlotCache
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	slotCache *cache.SlotCache,
	auditor *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		cache: slotCache,
		audit: auditor,
		now:   time.Now,
	}
}

// Execute applies an admin status change, enforcing the transition graph:
// pending may become confirmed or cancelled, confirmed may become completed
// or cancelled, and cancelled/completed are terminal. Confirming never moves
// the time, so no availability re-check is needed.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
	newStatus domain.Status,
) (*models.Appointment, error) {

	if !newStatus.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(domain.Status(ap.Status), newStatus); err != nil {
		return nil, err
	}

	now := uc.now()
	ap.Status = string(newStatus)

	switch newStatus {
	case domain.StatusCancelled:
		ap.CancelledAt = &now
	case domain.StatusCompleted:
		ap.CompletedAt = &now
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.AppointmentDate.Format(dateFormat))

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"status": string(newStatus)},
	})

	return ap, nil
}
