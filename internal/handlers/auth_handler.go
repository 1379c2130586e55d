package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/schedulingco/scheduler-api/internal/audit"
	"github.com/schedulingco/scheduler-api/internal/config"
	"github.com/schedulingco/scheduler-api/internal/httperr"
	"github.com/schedulingco/scheduler-api/internal/models"
	"github.com/schedulingco/scheduler-api/internal/store"
)

type AuthHandler struct {
	store  *store.Store
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(st *store.Store, cfg *config.Config, dispatcher *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{store: st, config: cfg, audit: dispatcher}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required,oneof=CUSTOMER BUSINESS"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	user, err := h.store.Register(c.Request.Context(), store.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		if httperr.IsBusiness(err, "duplicate_email") {
			httperr.Conflict(c, "duplicate_email", "An account with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_register", "Could not create the account.")
		return
	}

	if user.IsBusiness() {
		h.audit.Dispatch(audit.Event{
			BusinessID: user.ID,
			UserID:     &user.ID,
			Action:     "user_registered",
			Entity:     "user",
			EntityID:   user.ID,
		})
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue the session token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	user, err := h.store.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// same answer for unknown email and wrong password
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue the session token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
