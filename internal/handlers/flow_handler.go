package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/schedulingco/scheduler-api/internal/domain/booking"
	"github.com/schedulingco/scheduler-api/internal/httperr"
	"github.com/schedulingco/scheduler-api/internal/middleware"
	"github.com/schedulingco/scheduler-api/internal/store"
	usecase "github.com/schedulingco/scheduler-api/internal/usecase/booking"
)

// FlowHandler drives the stepwise booking wizard. Each customer session owns
// one flow; its state advances explicitly through the select/confirm
// endpoints instead of being inferred from which fields happen to be set.
type FlowHandler struct {
	store   *store.Store
	resolve *usecase.ResolveSlots
	book    *usecase.BookAppointment
	now     func() time.Time

	mu    sync.Mutex
	flows map[string]*domain.Flow
}

func NewFlowHandler(
	st *store.Store,
	resolve *usecase.ResolveSlots,
	book *usecase.BookAppointment,
) *FlowHandler {
	return &FlowHandler{
		store:   st,
		resolve: resolve,
		book:    book,
		now:     time.Now,
		flows:   make(map[string]*domain.Flow),
	}
}

func (h *FlowHandler) flowFor(userID string) *domain.Flow {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.flows[userID]
	if !ok {
		f = domain.NewFlow()
		h.flows[userID] = f
	}
	return f
}

// --------- Requests ---------

type FlowSelectBusinessRequest struct {
	BusinessID string `json:"business_id" binding:"required"`
}

type FlowSelectDateRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

type FlowSelectTimeRequest struct {
	Time string `json:"time" binding:"required"`
}

// --------- Handlers ---------

func (h *FlowHandler) Current(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	c.JSON(http.StatusOK, h.flowFor(userID))
}

func (h *FlowHandler) SelectBusiness(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req FlowSelectBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A business is required.")
		return
	}

	if _, err := h.store.GetBusiness(c.Request.Context(), req.BusinessID); err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	flow := h.flowFor(userID)
	if err := flow.SelectBusiness(req.BusinessID); err != nil {
		httperr.Conflict(c, "invalid_state", "Not browsing right now.")
		return
	}

	c.JSON(http.StatusOK, flow)
}

func (h *FlowHandler) SelectDate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req FlowSelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A date is required.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	// the calendar never offers days that already passed
	if isPastDate(date, h.now()) {
		httperr.BadRequest(c, "date_in_past", "The date has already passed.")
		return
	}

	flow := h.flowFor(userID)
	if err := flow.SelectDate(date); err != nil {
		httperr.Conflict(c, "invalid_state", "Pick a business first.")
		return
	}

	slots, err := h.resolve.Execute(c.Request.Context(), flow.BusinessID, date)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Could not resolve time slots.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"flow":  flow,
		"slots": slots,
	})
}

func (h *FlowHandler) SelectTime(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req FlowSelectTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A time is required.")
		return
	}

	flow := h.flowFor(userID)
	if flow.State != domain.StateTimeSelection {
		httperr.Conflict(c, "invalid_state", "Pick a date first.")
		return
	}

	// only currently offered, unbooked labels are selectable
	slots, err := h.resolve.Execute(c.Request.Context(), flow.BusinessID, flow.Date)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Could not resolve time slots.")
		return
	}

	selectable := false
	for _, s := range slots {
		if s.Label == req.Time && !s.Booked {
			selectable = true
			break
		}
	}
	if !selectable {
		httperr.BadRequest(c, "slot_not_available", "That time is not offered.")
		return
	}

	if err := flow.SelectTime(req.Time); err != nil {
		httperr.Conflict(c, "invalid_state", "Pick a date first.")
		return
	}

	c.JSON(http.StatusOK, flow)
}

func (h *FlowHandler) CancelTime(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	flow := h.flowFor(userID)
	if err := flow.CancelTime(); err != nil {
		httperr.Conflict(c, "invalid_state", "Nothing to cancel.")
		return
	}

	c.JSON(http.StatusOK, flow)
}

// Submit books the selected slot. The slot's freshness is not re-checked
// here; what was selectable at time selection is booked as-is.
func (h *FlowHandler) Submit(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	customer, err := h.store.GetUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Unauthorized(c, "user_not_found", "Unknown user.")
		return
	}

	flow := h.flowFor(userID)
	if flow.State != domain.StateConfirming {
		httperr.Conflict(c, "invalid_state", "Nothing to confirm.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), usecase.BookAppointmentInput{
		BusinessID: flow.BusinessID,
		Customer:   customer,
		Date:       flow.Date,
		Time:       flow.TimeLabel,
	})
	if err != nil {
		httperr.Internal(c, "booking_failed", "Could not book the appointment.")
		return
	}

	if err := flow.Submit(); err != nil {
		httperr.Conflict(c, "invalid_state", "Nothing to confirm.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"flow":        flow,
		"appointment": ap,
	})
}

func (h *FlowHandler) Reset(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	flow := h.flowFor(userID)
	if err := flow.Reset(); err != nil {
		httperr.Conflict(c, "invalid_state", "No completed booking to reset.")
		return
	}

	c.JSON(http.StatusOK, flow)
}
