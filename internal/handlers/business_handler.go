package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schedulingco/scheduler-api/internal/audit"
	"github.com/schedulingco/scheduler-api/internal/httperr"
	"github.com/schedulingco/scheduler-api/internal/middleware"
	"github.com/schedulingco/scheduler-api/internal/models"
	"github.com/schedulingco/scheduler-api/internal/store"
)

// BusinessHandler lets a business edit its own profile and weekly
// availability. The two are independent tabs over the same entity.
type BusinessHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewBusinessHandler(st *store.Store, dispatcher *audit.Dispatcher) *BusinessHandler {
	return &BusinessHandler{store: st, audit: dispatcher}
}

// --------- Requests ---------

type ServiceConfig struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
}

type UpdateProfileRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Services    []ServiceConfig `json:"services" binding:"dive"`
}

type AvailabilityWindowConfig struct {
	Day       string `json:"day" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Enabled   bool   `json:"enabled"`
}

type UpdateAvailabilityRequest struct {
	Days []AvailabilityWindowConfig `json:"days" binding:"required,dive"`
}

// --------- Profile ---------

func (h *BusinessHandler) GetProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	biz, err := h.store.GetBusiness(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          biz.ID,
		"name":        biz.Name,
		"email":       biz.Email,
		"description": biz.Business.Description,
		"services":    biz.Business.Services,
	})
}

func (h *BusinessHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile data.")
		return
	}

	services := make([]models.Service, 0, len(req.Services))
	for _, s := range req.Services {
		services = append(services, models.Service{
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
		})
	}

	biz, err := h.store.UpdateBusinessProfile(c.Request.Context(), userID, req.Name, req.Description, services)
	if err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BusinessID: biz.ID,
		UserID:     &biz.ID,
		Action:     "profile_updated",
		Entity:     "business",
		EntityID:   biz.ID,
	})

	c.JSON(http.StatusOK, biz)
}

// --------- Availability ---------

func (h *BusinessHandler) GetAvailability(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	biz, err := h.store.GetBusiness(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	c.JSON(http.StatusOK, biz.Business.Availability)
}

// UpdateAvailability replaces the weekly schedule. Window times are taken as
// submitted: a window whose start is not before its end just offers no slots.
func (h *BusinessHandler) UpdateAvailability(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	windows := make([]models.AvailabilityWindow, 0, len(req.Days))
	for _, d := range req.Days {
		windows = append(windows, models.AvailabilityWindow{
			Day:       d.Day,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			Enabled:   d.Enabled,
		})
	}

	biz, err := h.store.UpdateBusinessAvailability(c.Request.Context(), userID, windows)
	if err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BusinessID: biz.ID,
		UserID:     &biz.ID,
		Action:     "availability_updated",
		Entity:     "business",
		EntityID:   biz.ID,
	})

	c.JSON(http.StatusOK, biz.Business.Availability)
}
