package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schedulingco/scheduler-api/internal/middleware"
	"github.com/schedulingco/scheduler-api/internal/store"
)

type MeHandler struct {
	store *store.Store
}

func NewMeHandler(st *store.Store) *MeHandler {
	return &MeHandler{store: st}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
