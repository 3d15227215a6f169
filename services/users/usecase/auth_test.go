package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/arkhami/duitku/internal/pkg/apperrors"
	jwtpkg "github.com/arkhami/duitku/internal/pkg/jwt"
	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/arkhami/duitku/services/users/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "duitku-test",
		},
	}
}

func TestRegister_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	req := &models.RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
	}

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(nil, apperrors.ErrNotFound)
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *models.User) error {
			assert.Equal(t, "a@x.com", user.Email)
			assert.Equal(t, "A", user.FullName)
			// Credential secret must be stored hashed
			assert.NotEqual(t, "secret1", user.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))
			user.ID = uuid.New()
			return nil
		})

	// Act
	resp, err := uc.Register(context.Background(), req)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, int64(0))

	// Token must resolve back to the created user
	claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), (*claims)["user_id"])
}

func TestRegister_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		req       *models.RegisterRequest
		wantField string
	}{
		{
			name:      "missing name",
			req:       &models.RegisterRequest{Email: "a@x.com", Password: "secret1"},
			wantField: "name",
		},
		{
			name:      "missing email",
			req:       &models.RegisterRequest{Name: "A", Password: "secret1"},
			wantField: "email",
		},
		{
			name:      "malformed email",
			req:       &models.RegisterRequest{Name: "A", Email: "not-an-email", Password: "secret1"},
			wantField: "email",
		},
		{
			name:      "short password",
			req:       &models.RegisterRequest{Name: "A", Email: "a@x.com", Password: "12345"},
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No repository call may happen for invalid input
			mockRepo := mocks.NewMockUserRepo(ctrl)
			uc := NewUserUC(mockRepo, testConfig())

			resp, err := uc.Register(context.Background(), tt.req)

			assert.Nil(t, resp)
			var vErr *apperrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	existing := &models.User{ID: uuid.New(), Email: "a@x.com"}
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(existing, nil)

	resp, err := uc.Register(context.Background(), &models.RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
	})

	assert.Nil(t, resp)
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		ID:       uuid.New(),
		Email:    "a@x.com",
		FullName: "A",
		Password: string(hashed),
	}

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(user, nil)

	uc := NewUserUC(mockRepo, testConfig())

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "a@x.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{ID: uuid.New(), Email: "a@x.com", Password: string(hashed)}

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(user, nil)

	uc := NewUserUC(mockRepo, testConfig())

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "a@x.com",
		Password: "wrong",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrAuthentication)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@x.com").Return(nil, apperrors.ErrNotFound)

	uc := NewUserUC(mockRepo, testConfig())

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@x.com",
		Password: "secret1",
	})

	assert.Nil(t, resp)
	// Unknown email surfaces as an authentication failure, not a not-found
	assert.ErrorIs(t, err, apperrors.ErrAuthentication)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.User{ID: userID, Email: "a@x.com"}

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(user, nil)

	uc := NewUserUC(mockRepo, testConfig())

	got, err := uc.GetByID(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}
