package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schedulingco/scheduler-api/internal/httperr"
	"github.com/schedulingco/scheduler-api/internal/httpresp"
	"github.com/schedulingco/scheduler-api/internal/models"
	"github.com/schedulingco/scheduler-api/internal/store"
	usecase "github.com/schedulingco/scheduler-api/internal/usecase/booking"
)

// PublicHandler serves the customer-facing browse surface: the business
// directory, a single business's page, and its offerable slots for a date.
type PublicHandler struct {
	store   *store.Store
	resolve *usecase.ResolveSlots
}

func NewPublicHandler(st *store.Store, resolve *usecase.ResolveSlots) *PublicHandler {
	return &PublicHandler{store: st, resolve: resolve}
}

// --------- DTOs ---------

type BusinessSummary struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Services    []models.Service `json:"services"`
}

// --------- Handlers ---------

func (h *PublicHandler) ListBusinesses(c *gin.Context) {
	filter := c.Query("query")

	businesses, err := h.store.ListBusinesses(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_businesses", "Could not list businesses.")
		return
	}

	out := make([]BusinessSummary, 0, len(businesses))
	for _, b := range businesses {
		out = append(out, BusinessSummary{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Business.Description,
			Services:    b.Business.Services,
		})
	}

	httpresp.List(c, out)
}

func (h *PublicHandler) GetBusiness(c *gin.Context) {
	id := c.Param("id")

	biz, err := h.store.GetBusiness(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           biz.ID,
		"name":         biz.Name,
		"description":  biz.Business.Description,
		"services":     biz.Business.Services,
		"availability": biz.Business.Availability,
	})
}

func (h *PublicHandler) Slots(c *gin.Context) {
	id := c.Param("id")
	dateStr := c.Query("date")

	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "A date is required.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slots, err := h.resolve.Execute(c.Request.Context(), id, date)
	if err != nil {
		if httperr.IsBusiness(err, "business_not_found") {
			httperr.NotFound(c, "business_not_found", "Business not found.")
			return
		}
		httperr.Internal(c, "availability_failed", "Could not resolve time slots.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
