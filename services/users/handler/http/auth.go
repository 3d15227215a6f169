package http

import (
	"net/http"

	"github.com/arkhami/duitku/internal/pkg/logger"
	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/arkhami/duitku/internal/utils"
	"github.com/arkhami/duitku/services/users"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// Register handles account creation requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Registration failed", logrus.Fields{
			"error":    err.Error(),
			"endpoint": "Register",
		})
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", resp)
}

// Login handles authentication requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Login failed", logrus.Fields{
			"error":    err.Error(),
			"endpoint": "Login",
		})
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
