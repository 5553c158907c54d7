package booking

import (
	"context"
	"time"

	"github.com/hammam97-h/barber-booking/internal/models"
)

type Repository interface {
	// -------- Service catalog --------
	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Work hours --------

	// GetWorkHoursByDay returns (nil, nil) when no row exists for the
	// weekday; a non-nil error always means the store itself failed.
	GetWorkHoursByDay(
		ctx context.Context,
		dayOfWeek int,
	) (*models.WorkHour, error)

	// -------- Appointment (availability) --------
	ListAppointmentsForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment re-checks the interval for overlap and inserts
	// atomically; overlap yields the time_conflict business error.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (projections) --------
	ListAppointmentsByUser(
		ctx context.Context,
		userID uint,
		after *time.Time,
	) ([]models.Appointment, error)

	ListAllAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListUpcomingAppointments(
		ctx context.Context,
		now time.Time,
	) ([]models.Appointment, error)

	ListPendingAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)
}
