package booking

import (
	"context"
	"time"

	"github.com/hammam97-h/barber-booking/internal/cache"
	domain "github.com/hammam97-h/barber-booking/internal/domain/booking"
)

const dateFormat = "2006-01-02"

type GetAvailableSlots struct {
	repo  domain.Repository
	cache *cache.SlotCache
	now   func() time.Time
}

func NewGetAvailableSlots(repo domain.Repository, slotCache *cache.SlotCache) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:  repo,
		cache: slotCache,
		now:   time.Now,
	}
}

// Execute computes the advisory availability view for one calendar day.
// date must be midnight of the requested day in the local timezone.
//
// The view is what customers pick from; the booking transaction re-derives
// the same answer from the store before committing, so serving a slightly
// stale copy here is safe.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	date time.Time,
	serviceID uint,
) (*domain.DayAvailability, error) {

	dateKey := date.Format(dateFormat)
	if view, ok := uc.cache.Get(ctx, dateKey, serviceID); ok {
		// a slot may have slipped into the past since the view was cached
		domain.MarkPastUnavailable(date, view.Slots, uc.now())
		return view, nil
	}

	wh, err := uc.repo.GetWorkHoursByDay(ctx, int(date.Weekday()))
	if err != nil {
		return nil, err
	}

	// closed or unconfigured day: a legitimate empty result, not an error
	if wh == nil || !wh.IsWorkingDay {
		return &domain.DayAvailability{
			IsWorkingDay: false,
			Slots:        []domain.Slot{},
		}, nil
	}

	service, err := uc.repo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	openMin, err := domain.ParseClock(wh.StartTime)
	if err != nil {
		return nil, err
	}
	closeMin, err := domain.ParseClock(wh.EndTime)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		date,
		date.Add(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(appointments))
	for _, ap := range appointments {
		busy = append(busy, domain.Interval{
			Start: ap.AppointmentDate,
			End:   ap.EndTime,
		})
	}

	view := &domain.DayAvailability{
		IsWorkingDay: true,
		Slots: domain.BuildSlots(
			date,
			openMin,
			closeMin,
			wh.SlotDurationMinutes,
			service.DurationMinutes,
			busy,
			uc.now(),
		),
	}

	uc.cache.Set(ctx, dateKey, serviceID, view)

	return view, nil
}
