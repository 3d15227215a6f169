package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/arkhami/duitku/services/users/mocks"
)

func performAuthenticatedRequest(t *testing.T, handler echo.HandlerFunc, callerID uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", callerID)
	c.Set("user_email", "a@x.com")

	require.NoError(t, handler(c))
	return rec
}

func TestMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()

	mockUC := mocks.NewMockUserUC(ctrl)
	mockUC.EXPECT().GetByID(gomock.Any(), callerID).
		Return(&models.User{ID: callerID, Email: "a@x.com", FullName: "A"}, nil)

	h := NewUserHandler(mockUC)

	rec := performAuthenticatedRequest(t, h.Me, callerID)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a@x.com")
}

func TestMe_NoCallerIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()

	mockUC := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(mockUC)

	rec := performAuthenticatedRequest(t, h.Verify, callerID)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), callerID.String())
}
