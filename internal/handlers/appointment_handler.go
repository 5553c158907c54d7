package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	booking "github.com/hammam97-h/barber-booking/internal/domain/booking"
	"github.com/hammam97-h/barber-booking/internal/middleware"
	"github.com/hammam97-h/barber-booking/internal/models"
	ucBooking "github.com/hammam97-h/barber-booking/internal/usecase/booking"
)

type AppointmentHandler struct {
	db *gorm.DB

	getSlotsUC     *ucBooking.GetAvailableSlots
	createUC       *ucBooking.CreateAppointment
	cancelUC       *ucBooking.CancelAppointment
	updateStatusUC *ucBooking.UpdateAppointmentStatus
	listUC         *ucBooking.ListAppointments
}

func NewAppointmentHandler(
	db *gorm.DB,
	getSlotsUC *ucBooking.GetAvailableSlots,
	createUC *ucBooking.CreateAppointment,
	cancelUC *ucBooking.CancelAppointment,
	updateStatusUC *ucBooking.UpdateAppointmentStatus,
	listUC *ucBooking.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:             db,
		getSlotsUC:     getSlotsUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
		updateStatusUC: updateStatusUC,
		listUC:         listUC,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ServiceID       uint   `json:"service_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"` // ISO-8601
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	Notes           string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Availability ---------

// Slots answers GET /appointments/slots?date=YYYY-MM-DD&service_id=N.
func (h *AppointmentHandler) Slots(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_service_id"})
		return
	}

	view, err := h.getSlotsUC.Execute(c.Request.Context(), date, uint(serviceID))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// --------- Booking ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	customerName := req.CustomerName
	if customerName == "" {
		var user models.User
		if err := h.db.First(&user, userID).Error; err == nil {
			customerName = user.Name
		}
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		UserID:          userID,
		ServiceID:       req.ServiceID,
		AppointmentDate: req.AppointmentDate,
		CustomerName:    customerName,
		CustomerPhone:   req.CustomerPhone,
		Notes:           req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        ap.ID,
		"reference": ap.Reference,
		"status":    ap.Status,
	})
}

// --------- Customer views ---------

func (h *AppointmentHandler) MyAppointments(c *gin.Context) {
	userID := middleware.UserID(c)
	upcomingOnly := c.Query("upcoming") == "true"

	views, err := h.listUC.ByUser(c.Request.Context(), userID, upcomingOnly)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := middleware.UserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	ap, err := h.cancelUC.Execute(
		c.Request.Context(),
		userID,
		middleware.IsAdmin(c),
		uint(id),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     ap.ID,
		"status": ap.Status,
	})
}

// --------- Admin ---------

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	views, err := h.listUC.All(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *AppointmentHandler) ListUpcoming(c *gin.Context) {
	views, err := h.listUC.Upcoming(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *AppointmentHandler) ListPending(c *gin.Context) {
	views, err := h.listUC.Pending(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	adminID := middleware.UserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.updateStatusUC.Execute(
		c.Request.Context(),
		adminID,
		uint(id),
		booking.Status(req.Status),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     ap.ID,
		"status": ap.Status,
	})
}
