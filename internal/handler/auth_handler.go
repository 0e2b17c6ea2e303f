package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flexpass/gympass-backend-go/internal/middleware"
	"github.com/flexpass/gympass-backend-go/internal/models"
	"github.com/flexpass/gympass-backend-go/internal/service"
	"github.com/flexpass/gympass-backend-go/pkg/response"
)

// AuthHandler handles HTTP requests for accounts and sessions
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid registration payload", err)
		return
	}

	user, token, err := h.service.Register(input)
	if err == service.ErrEmailTaken {
		response.Error(c, http.StatusConflict, "Email already registered", nil)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to register", err)
		return
	}

	response.Success(c, gin.H{"user": user, "token": token})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid login payload", err)
		return
	}

	user, token, err := h.service.Login(input)
	if err == service.ErrInvalidCredentials {
		response.Error(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to log in", err)
		return
	}

	response.Success(c, gin.H{"user": user, "token": token})
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.GetUser(middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}
	if user == nil {
		response.Error(c, http.StatusNotFound, "User not found", nil)
		return
	}

	response.Success(c, user)
}
