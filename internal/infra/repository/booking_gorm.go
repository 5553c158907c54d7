package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	booking "github.com/hammam97-h/barber-booking/internal/domain/booking"
	"github.com/hammam97-h/barber-booking/internal/httperr"
	"github.com/hammam97-h/barber-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Work hours
// --------------------------------------------------

func (r *BookingGormRepository) GetWorkHoursByDay(
	ctx context.Context,
	dayOfWeek int,
) (*models.WorkHour, error) {

	var wh models.WorkHour
	err := r.db.WithContext(ctx).
		Where("day_of_week = ?", dayOfWeek).
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// a missing row means a closed day, not a storage failure
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &wh, nil
}

// --------------------------------------------------
// Appointment (availability)
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("appointment_date", "end_time").
		Where(
			"status <> ? AND appointment_date >= ? AND appointment_date < ?",
			booking.StatusCancelled, dayStart, dayEnd,
		).
		Order("appointment_date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// lockOverlapping loads and row-locks every non-cancelled appointment
// overlapping [start, end). The lock has to ride on a plain row select:
// Postgres rejects FOR UPDATE combined with aggregates.
func lockOverlapping(tx *gorm.DB, start, end time.Time, dest *[]models.Appointment) *gorm.DB {
	return tx.
		Select("id").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"status <> ? AND appointment_date < ? AND end_time > ?",
			booking.StatusCancelled, end, start,
		).
		Find(dest)
}

// CreateAppointment performs the authoritative overlap re-check and the
// insert in one transaction, locking the overlapping rows so two concurrent
// bookings for the same window cannot both pass the check.
func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conflicts []models.Appointment
		if err := lockOverlapping(tx, ap.AppointmentDate, ap.EndTime, &conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Appointment (projections)
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointmentsByUser(
	ctx context.Context,
	userID uint,
	after *time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Where("user_id = ?", userID)

	if after != nil {
		q = q.Where("appointment_date >= ?", *after).
			Order("appointment_date ASC")
	} else {
		q = q.Order("appointment_date DESC")
	}

	var apps []models.Appointment
	if err := q.Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) ListAllAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("User").
		Order("appointment_date DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) ListUpcomingAppointments(
	ctx context.Context,
	now time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("User").
		Where("appointment_date >= ?", now).
		Order("appointment_date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) ListPendingAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("User").
		Where("status = ?", booking.StatusPending).
		Order("appointment_date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ booking.Repository = (*BookingGormRepository)(nil)
