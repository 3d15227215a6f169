package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jwtpkg "github.com/arkhami/duitku/internal/pkg/jwt"
	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "duitku-test",
	}
}

func performAuthRequest(t *testing.T, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var callerID uuid.UUID
	var resolved bool
	handler := JWTAuthMiddleware(testJWTConfig())(func(c echo.Context) error {
		callerID, resolved = CallerID(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	return rec, callerID, resolved
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	cfg := &models.Config{JWT: testJWTConfig()}

	token, _, err := jwtpkg.GenerateToken(userID, "a@x.com", cfg)
	require.NoError(t, err)

	rec, callerID, resolved := performAuthRequest(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resolved)
	assert.Equal(t, userID, callerID)
}

func TestJWTAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "missing header", authHeader: ""},
		{name: "wrong scheme", authHeader: "Basic abc123"},
		{name: "malformed token", authHeader: "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _, resolved := performAuthRequest(t, tt.authHeader)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, resolved)
		})
	}
}

func TestJWTAuthMiddleware_TokenSignedWithOtherSecret(t *testing.T) {
	otherCfg := &models.Config{JWT: models.JWTConfig{Secret: "other-secret", Expiration: 60, Issuer: "x"}}

	token, _, err := jwtpkg.GenerateToken(uuid.New(), "a@x.com", otherCfg)
	require.NoError(t, err)

	rec, _, resolved := performAuthRequest(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resolved)
}
