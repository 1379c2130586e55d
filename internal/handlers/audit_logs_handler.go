package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/schedulingco/scheduler-api/internal/httperr"
	"github.com/schedulingco/scheduler-api/internal/middleware"
	"github.com/schedulingco/scheduler-api/internal/store"
)

type AuditLogsHandler struct {
	store *store.Store
}

func NewAuditLogsHandler(st *store.Store) *AuditLogsHandler {
	return &AuditLogsHandler{store: st}
}

// List pages through the business's own audit entries, newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextUserID).(string)

	action := c.Query("action")
	entity := c.Query("entity")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	logs, err := h.store.ListAuditLogs(c.Request.Context(), businessID, action, entity)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Could not list audit entries.")
		return
	}

	total := len(logs)

	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs[offset:end],
	})
}
