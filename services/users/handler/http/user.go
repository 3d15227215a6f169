package http

import (
	"net/http"

	"github.com/arkhami/duitku/internal/pkg/middleware"
	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/arkhami/duitku/internal/utils"
	"github.com/arkhami/duitku/services/users"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests for the authenticated user
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// Me returns the caller's own user record
func (h *UserHandler) Me(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetByID(c.Request().Context(), callerID)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// Verify confirms the caller's token is valid; the SPA probes this on boot
func (h *UserHandler) Verify(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	email, _ := c.Get("user_email").(string)

	return utils.SuccessResponse(c, http.StatusOK, "Token is valid", models.VerifyResponse{
		UserID: callerID.String(),
		Email:  email,
	})
}
