package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hammam97-h/barber-booking/internal/audit"
	"github.com/hammam97-h/barber-booking/internal/cache"
	"github.com/hammam97-h/barber-booking/internal/config"
	"github.com/hammam97-h/barber-booking/internal/handlers"
	infraRepo "github.com/hammam97-h/barber-booking/internal/infra/repository"
	"github.com/hammam97-h/barber-booking/internal/middleware"
	"github.com/hammam97-h/barber-booking/internal/notify"
	ucBooking "github.com/hammam97-h/barber-booking/internal/usecase/booking"
)

// RegisterRoutes wires the whole API surface. CORS is installed once in
// main, before this runs.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	// Nil when REDIS_ADDR is unset; every caller tolerates that.
	slotCache := cache.New(cfg.RedisAddr, cfg.RedisPassword)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifyDispatcher := notify.NewDispatcher(db)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	getSlotsUC := ucBooking.NewGetAvailableSlots(
		bookingRepo,
		slotCache,
	)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		slotCache,
		notifyDispatcher,
		auditDispatcher,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		slotCache,
		auditDispatcher,
	)

	updateStatusUC := ucBooking.NewUpdateAppointmentStatus(
		bookingRepo,
		slotCache,
		auditDispatcher,
	)

	listAppointmentsUC := ucBooking.NewListAppointments(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	workHoursHandler := handlers.NewWorkHoursHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		getSlotsUC,
		createAppointmentUC,
		cancelAppointmentUC,
		updateStatusUC,
		listAppointmentsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.GetByID)

		api.GET("/work-hours", workHoursHandler.List)
		api.GET("/work-hours/:day", workHoursHandler.GetByDay)

		api.GET("/appointments/slots", appointmentHandler.Slots)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/my", appointmentHandler.MyAppointments)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/services", serviceHandler.ListAll)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)
				admin.POST("/services/seed", serviceHandler.Seed)

				admin.PUT("/work-hours", workHoursHandler.Upsert)
				admin.POST("/work-hours/initialize", workHoursHandler.Initialize)

				admin.GET("/appointments", appointmentHandler.ListAll)
				admin.GET("/appointments/upcoming", appointmentHandler.ListUpcoming)
				admin.GET("/appointments/pending", appointmentHandler.ListPending)
				admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
