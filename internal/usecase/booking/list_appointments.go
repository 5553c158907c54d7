package booking

import (
	"context"
	"time"

	domain "github.com/hammam97-h/barber-booking/internal/domain/booking"
	"github.com/hammam97-h/barber-booking/internal/models"
)

// AppointmentView is an appointment enriched with its service (and, for
// admin listings, the booking user).
type AppointmentView struct {
	ID        uint   `json:"id"`
	Reference string `json:"reference"`

	AppointmentDate time.Time `json:"appointment_date"`
	EndTime         time.Time `json:"end_time"`
	Status          string    `json:"status"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Notes         string `json:"notes"`

	ServiceID       uint   `json:"service_id"`
	ServiceName     string `json:"service_name"`
	ServiceNameAr   string `json:"service_name_ar"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           int    `json:"price"`

	UserID    uint   `json:"user_id"`
	UserName  string `json:"user_name,omitempty"`
	UserPhone string `json:"user_phone,omitempty"`
}

type ListAppointments struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		now:  time.Now,
	}
}

// ByUser returns a customer's own appointments, newest first, or only the
// upcoming ones in chronological order.
func (uc *ListAppointments) ByUser(
	ctx context.Context,
	userID uint,
	upcomingOnly bool,
) ([]AppointmentView, error) {

	var after *time.Time
	if upcomingOnly {
		now := uc.now()
		after = &now
	}

	appointments, err := uc.repo.ListAppointmentsByUser(ctx, userID, after)
	if err != nil {
		return nil, err
	}

	return toViews(appointments), nil
}

func (uc *ListAppointments) All(ctx context.Context) ([]AppointmentView, error) {
	appointments, err := uc.repo.ListAllAppointments(ctx)
	if err != nil {
		return nil, err
	}
	return toViews(appointments), nil
}

func (uc *ListAppointments) Upcoming(ctx context.Context) ([]AppointmentView, error) {
	appointments, err := uc.repo.ListUpcomingAppointments(ctx, uc.now())
	if err != nil {
		return nil, err
	}
	return toViews(appointments), nil
}

func (uc *ListAppointments) Pending(ctx context.Context) ([]AppointmentView, error) {
	appointments, err := uc.repo.ListPendingAppointments(ctx)
	if err != nil {
		return nil, err
	}
	return toViews(appointments), nil
}

func toViews(appointments []models.Appointment) []AppointmentView {
	out := make([]AppointmentView, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, AppointmentView{
			ID:              ap.ID,
			Reference:       ap.Reference,
			AppointmentDate: ap.AppointmentDate,
			EndTime:         ap.EndTime,
			Status:          ap.Status,
			CustomerName:    ap.CustomerName,
			CustomerPhone:   ap.CustomerPhone,
			Notes:           ap.Notes,
			ServiceID:       ap.ServiceID,
			ServiceName:     ap.Service.Name,
			ServiceNameAr:   ap.Service.NameAr,
			DurationMinutes: ap.Service.DurationMinutes,
			Price:           ap.Service.Price,
			UserID:          ap.UserID,
			UserName:        ap.User.Name,
			UserPhone:       ap.User.Phone,
		})
	}
	return out
}
