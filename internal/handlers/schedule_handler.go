package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/schedulingco/scheduler-api/internal/httperr"
	"github.com/schedulingco/scheduler-api/internal/httpresp"
	"github.com/schedulingco/scheduler-api/internal/middleware"
	usecase "github.com/schedulingco/scheduler-api/internal/usecase/booking"
)

type ScheduleHandler struct {
	listDay   *usecase.ListSchedule
	listMonth *usecase.ListMonth
	now       func() time.Time
}

func NewScheduleHandler(listDay *usecase.ListSchedule, listMonth *usecase.ListMonth) *ScheduleHandler {
	return &ScheduleHandler{
		listDay:   listDay,
		listMonth: listMonth,
		now:       time.Now,
	}
}

// ByDate lists the business's appointments for one day; today when no date
// is given.
func (h *ScheduleHandler) ByDate(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextUserID).(string)

	dateStr := c.DefaultQuery("date", h.now().Format(dateLayout))
	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	entries, err := h.listDay.Execute(c.Request.Context(), businessID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_schedule", "Could not list the schedule.")
		return
	}

	httpresp.List(c, entries)
}

// ByMonth returns per-day appointment counts for the calendar grid.
func (h *ScheduleHandler) ByMonth(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextUserID).(string)

	now := h.now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	days, err := h.listMonth.Execute(c.Request.Context(), businessID, year, time.Month(month))
	if err != nil {
		httperr.Internal(c, "failed_to_list_schedule", "Could not list the schedule.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  days,
	})
}
