package booking

import (
	"context"
	"time"

	domain "github.com/hammam97-h/barber-booking/internal/domain/booking"
	"github.com/hammam97-h/barber-booking/internal/httperr"
	"github.com/hammam97-h/barber-booking/internal/models"
)

// fakeRepo is an in-memory Repository. Its conflict check mirrors the real
// one: overlap against every non-cancelled row, half-open intervals.
type fakeRepo struct {
	services     map[uint]*models.Service
	workHours    map[int]*models.WorkHour
	appointments []*models.Appointment
	nextID       uint

	// failWith, when set, is returned by every method. Simulates the
	// store itself being down.
	failWith error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:  map[uint]*models.Service{},
		workHours: map[int]*models.WorkHour{},
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	svc, ok := f.services[id]
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	cp := *svc
	return &cp, nil
}

func (f *fakeRepo) GetWorkHoursByDay(ctx context.Context, dayOfWeek int) (*models.WorkHour, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	wh, ok := f.workHours[dayOfWeek]
	if !ok {
		return nil, nil
	}
	cp := *wh
	return &cp, nil
}

func (f *fakeRepo) ListAppointmentsForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if !ap.AppointmentDate.Before(dayStart) && ap.AppointmentDate.Before(dayEnd) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, existing := range f.appointments {
		if existing.Status == string(domain.StatusCancelled) {
			continue
		}
		if existing.AppointmentDate.Before(ap.EndTime) && ap.AppointmentDate.Before(existing.EndTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	f.nextID++
	ap.ID = f.nextID
	cp := *ap
	f.appointments = append(f.appointments, &cp)
	return nil
}

func (f *fakeRepo) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, ap := range f.appointments {
		if ap.ID == id {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, existing := range f.appointments {
		if existing.ID == ap.ID {
			cp := *ap
			f.appointments[i] = &cp
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) ListAppointmentsByUser(ctx context.Context, userID uint, after *time.Time) ([]models.Appointment, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.UserID != userID {
			continue
		}
		if after != nil && ap.AppointmentDate.Before(*after) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) ListAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

// ListUpcomingAppointments mirrors the store's predicate: everything from
// now on, cancelled rows included.
func (f *fakeRepo) ListUpcomingAppointments(ctx context.Context, now time.Time) ([]models.Appointment, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if !ap.AppointmentDate.Before(now) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListPendingAppointments(ctx context.Context) ([]models.Appointment, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.Status == string(domain.StatusPending) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

// ---- test fixtures ----

func (f *fakeRepo) addService(id uint, durationMinutes int, active bool) {
	f.services[id] = &models.Service{
		ID:              id,
		Name:            "Haircut",
		DurationMinutes: durationMinutes,
		Price:           10,
		IsActive:        active,
	}
}

func (f *fakeRepo) addWorkHours(day int, start, end string, working bool, step int) {
	f.workHours[day] = &models.WorkHour{
		DayOfWeek:           day,
		StartTime:           start,
		EndTime:             end,
		IsWorkingDay:        working,
		SlotDurationMinutes: step,
	}
}
