package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hammam97-h/barber-booking/internal/audit"
	"github.com/hammam97-h/barber-booking/internal/cache"
	domain "github.com/hammam97-h/barber-booking/internal/domain/booking"
	"github.com/hammam97-h/barber-booking/internal/httperr"
	"github.com/hammam97-h/barber-booking/internal/models"
	"github.com/hammam97-h/barber-booking/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID    uint
	ServiceID uint

	// AppointmentDate is the slot start as an ISO-8601 string.
	AppointmentDate string

	CustomerName  string
	CustomerPhone string
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	cache  *cache.SlotCache
	notify *notify.Dispatcher
	audit  *audit.Dispatcher
	now    func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	slotCache *cache.SlotCache,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		cache:  slotCache,
		notify: notifier,
		audit:  auditor,
		now:    time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books a slot. The availability list the customer saw is treated as
// advisory only: the repository re-checks the interval for overlap inside the
// same transaction as the insert, which is the single authoritative guard
// against double booking.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	start, err := parseISODateTime(in.AppointmentDate)
	if err != nil {
		return nil, err
	}

	// An inactive service is deliberately NOT rejected here: the catalog
	// hides it from new browsing, but a customer already mid-booking may
	// still complete.
	service, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(service.DurationMinutes) * time.Minute)

	ap := &models.Appointment{
		Reference:       uuid.NewString(),
		UserID:          in.UserID,
		ServiceID:       service.ID,
		AppointmentDate: start,
		EndTime:         end,
		Status:          string(domain.InitialStatus()),
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, start.Format(dateFormat))

	uc.notify.Dispatch(notify.Message{
		Title: "New appointment booking",
		Content: fmt.Sprintf(
			"Customer: %s\nService: %s\nDate: %s\nTime: %s",
			ap.CustomerName,
			service.Name,
			start.Format(dateFormat),
			start.Format("15:04"),
		),
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// parseISODateTime accepts RFC3339 or a local date-time without offset.
func parseISODateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local(), nil
	}

	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, httperr.ErrBusiness("invalid_date")
}
