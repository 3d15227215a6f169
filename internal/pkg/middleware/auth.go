package middleware

import (
	"fmt"
	"strings"

	jwtpkg "github.com/arkhami/duitku/internal/pkg/jwt"
	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/arkhami/duitku/internal/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// JWTAuthMiddleware creates a middleware for JWT authentication. The
// resolved caller identity is placed into the echo context under
// "user_id"; handlers must never take it from the request payload.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			// Check if the Authorization header has the correct format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			// Extract the token
			tokenString := parts[1]

			// Validate the token using our JWT package
			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			// Extract user ID and email from claims
			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			// Parse the UUID
			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			// Set the caller identity in the context
			c.Set("user_id", userID)
			if email, ok := (*claims)["email"]; ok {
				c.Set("user_email", fmt.Sprintf("%v", email))
			}

			return next(c)
		}
	}
}

// CallerID extracts the authenticated caller identity set by
// JWTAuthMiddleware from the echo context
func CallerID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}
