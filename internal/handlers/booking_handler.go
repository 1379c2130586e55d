package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/schedulingco/scheduler-api/internal/httperr"
	"github.com/schedulingco/scheduler-api/internal/httpresp"
	"github.com/schedulingco/scheduler-api/internal/middleware"
	"github.com/schedulingco/scheduler-api/internal/store"
	usecase "github.com/schedulingco/scheduler-api/internal/usecase/booking"
)

// BookingHandler is the direct booking endpoint for authenticated customers.
type BookingHandler struct {
	store *store.Store
	book  *usecase.BookAppointment
}

func NewBookingHandler(st *store.Store, book *usecase.BookAppointment) *BookingHandler {
	return &BookingHandler{
		store: st,
		book:  book,
	}
}

type CreateBookingRequest struct {
	BusinessID string `json:"business_id" binding:"required"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time" binding:"required"` // slot label, e.g. "10:00 AM"
}

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	customer, err := h.store.GetUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Unauthorized(c, "user_not_found", "Unknown user.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), usecase.BookAppointmentInput{
		BusinessID: req.BusinessID,
		Customer:   customer,
		Date:       date,
		Time:       req.Time,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "business_not_found"):
			httperr.NotFound(c, "business_not_found", "Business not found.")
		case httperr.IsBusiness(err, "date_in_past"):
			httperr.BadRequest(c, "date_in_past", "The date has already passed.")
		default:
			httperr.Internal(c, "booking_failed", "Could not book the appointment.")
		}
		return
	}

	httpresp.Created(c, ap)
}
