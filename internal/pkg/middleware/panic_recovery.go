package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/arkhami/duitku/internal/pkg/logger"
	"github.com/arkhami/duitku/internal/utils"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs the stack trace, and converts the panic into a 500 response
func PanicRecoveryMiddleware(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, appLogger)
				}
			}()

			return next(c)
		}
	}
}

// handlePanic handles the panic recovery, logging, and response
func handlePanic(c echo.Context, r interface{}, appLogger *logger.AppLogger) {
	// Get user ID if available
	userID := "anonymous"
	if uid := c.Get("user_id"); uid != nil {
		userID = fmt.Sprintf("%v", uid)
	}

	appLogger.WithFields(logrus.Fields{
		"panic_value": r,
		"panic_type":  fmt.Sprintf("%T", r),
		"stack_trace": string(debug.Stack()),
		"method":      c.Request().Method,
		"path":        c.Request().URL.Path,
		"client_ip":   c.RealIP(),
		"user_id":     userID,
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}).Error("Panic recovered")

	if !c.Response().Committed {
		_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}
