package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hammam97-h/barber-booking/internal/audit"
	booking "github.com/hammam97-h/barber-booking/internal/domain/booking"
	"github.com/hammam97-h/barber-booking/internal/httperr"
	"github.com/hammam97-h/barber-booking/internal/middleware"
	"github.com/hammam97-h/barber-booking/internal/models"
	"github.com/hammam97-h/barber-booking/internal/workhours"
)

type WorkHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewWorkHoursHandler(db *gorm.DB, auditor *audit.Dispatcher) *WorkHoursHandler {
	return &WorkHoursHandler{db: db, audit: auditor}
}

type UpsertWorkHoursRequest struct {
	DayOfWeek           int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime           string `json:"start_time" binding:"required"`
	EndTime             string `json:"end_time" binding:"required"`
	IsWorkingDay        bool   `json:"is_working_day"`
	SlotDurationMinutes int    `json:"slot_duration_minutes" binding:"required,min=5"`
}

// List returns all seven weekday rows. Seeding happens at startup, never
// here: reads stay side-effect free.
func (h *WorkHoursHandler) List(c *gin.Context) {
	var hours []models.WorkHour
	if err := h.db.
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_work_hours", "Failed to load work hours.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *WorkHoursHandler) GetByDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 0 || day > 6 {
		httperr.BadRequest(c, "invalid_day", "Day of week must be 0..6.")
		return
	}

	var wh models.WorkHour
	if err := h.db.Where("day_of_week = ?", day).First(&wh).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "work_hours_not_found", "No work hours for that day.")
			return
		}
		httperr.Internal(c, "failed_to_get_work_hours", "Failed to load work hours.")
		return
	}

	c.JSON(http.StatusOK, wh)
}

// Upsert replaces the full row for one weekday.
func (h *WorkHoursHandler) Upsert(c *gin.Context) {
	var req UpsertWorkHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	startMin, err := booking.ParseClock(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time_format", "Times must be \"HH:MM\".")
		return
	}
	endMin, err := booking.ParseClock(req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time_format", "Times must be \"HH:MM\".")
		return
	}

	if req.IsWorkingDay && startMin >= endMin {
		httperr.BadRequest(c, "invalid_window", "Opening time must be before closing time.")
		return
	}

	var wh models.WorkHour
	err = h.db.Where("day_of_week = ?", req.DayOfWeek).First(&wh).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		httperr.Internal(c, "failed_to_save_work_hours", "Failed to save work hours.")
		return
	}

	wh.DayOfWeek = req.DayOfWeek
	wh.StartTime = req.StartTime
	wh.EndTime = req.EndTime
	wh.IsWorkingDay = req.IsWorkingDay
	wh.SlotDurationMinutes = req.SlotDurationMinutes

	if err := h.db.Save(&wh).Error; err != nil {
		httperr.Internal(c, "failed_to_save_work_hours", "Failed to save work hours.")
		return
	}

	userID := middleware.UserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "work_hours_updated",
		Entity:   "work_hour",
		EntityID: &wh.ID,
		Metadata: map[string]int{"day_of_week": wh.DayOfWeek},
	})

	c.JSON(http.StatusOK, wh)
}

// Initialize re-runs the idempotent default seeding.
func (h *WorkHoursHandler) Initialize(c *gin.Context) {
	if err := workhours.EnsureDefaults(h.db); err != nil {
		httperr.Internal(c, "failed_to_initialize_work_hours", "Failed to initialize work hours.")
		return
	}

	userID := middleware.UserID(c)
	h.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "work_hours_initialized",
		Entity: "work_hour",
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
