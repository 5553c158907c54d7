package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hammam97-h/barber-booking/internal/audit"
	"github.com/hammam97-h/barber-booking/internal/httperr"
	"github.com/hammam97-h/barber-booking/internal/httpresp"
	"github.com/hammam97-h/barber-booking/internal/middleware"
	"github.com/hammam97-h/barber-booking/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, auditor *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: auditor}
}

func (h *ServiceHandler) auditEvent(c *gin.Context, action string, serviceID uint) {
	userID := middleware.UserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "service",
		EntityID: &serviceID,
	})
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	NameAr          string `json:"name_ar"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=5"`
	Price           int    `json:"price" binding:"min=0"`
}

type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	NameAr          *string `json:"name_ar,omitempty"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" binding:"omitempty,min=5"`
	Price           *int    `json:"price,omitempty" binding:"omitempty,min=0"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

// --------- Handlers ---------

// List is the public catalog: active services only.
func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("is_active = true").
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	httpresp.List(c, services)
}

// ListAll is the admin catalog: everything, soft-deleted included.
func (h *ServiceHandler) ListAll(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service := models.Service{
		Name:            req.Name,
		NameAr:          req.NameAr,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		IsActive:        true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create service.")
		return
	}

	h.auditEvent(c, "service_created", service.ID)
	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var service models.Service
	if err := h.db.First(&service, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.NameAr != nil {
		service.NameAr = *req.NameAr
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}

	h.auditEvent(c, "service_updated", service.ID)
	httpresp.OK(c, service)
}

// Delete is a soft delete: past appointments keep referencing the row, so it
// is only hidden from the public catalog.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	result := h.db.Model(&models.Service{}).
		Where("id = ?", uint(id)).
		Update("is_active", false)

	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Failed to delete service.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	h.auditEvent(c, "service_deactivated", uint(id))
	httpresp.OK(c, gin.H{"status": "ok"})
}

// Seed provisions a starter catalog on an empty installation.
func (h *ServiceHandler) Seed(c *gin.Context) {
	var count int64
	if err := h.db.Model(&models.Service{}).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_seed_services", "Failed to seed services.")
		return
	}
	if count > 0 {
		httpresp.OK(c, gin.H{"status": "already_seeded"})
		return
	}

	defaults := []models.Service{
		{Name: "Haircut", NameAr: "قص شعر", DurationMinutes: 30, Price: 10, IsActive: true},
		{Name: "Beard Trim", NameAr: "تحديد لحية", DurationMinutes: 15, Price: 5, IsActive: true},
		{Name: "Haircut & Beard", NameAr: "قص شعر ولحية", DurationMinutes: 45, Price: 13, IsActive: true},
		{Name: "Kids Haircut", NameAr: "قص شعر أطفال", DurationMinutes: 20, Price: 7, IsActive: true},
	}

	if err := h.db.Create(&defaults).Error; err != nil {
		httperr.Internal(c, "failed_to_seed_services", "Failed to seed services.")
		return
	}

	userID := middleware.UserID(c)
	h.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "services_seeded",
		Entity: "service",
	})

	httpresp.OK(c, gin.H{"status": "ok"})
}
