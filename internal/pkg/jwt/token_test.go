package jwt

import (
	"fmt"
	"testing"

	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // 60 minutes
			Issuer:     "duitku-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name   string
		userID uuid.UUID
		email  string
	}{
		{
			name:   "Valid token generation",
			userID: uuid.New(),
			email:  "a@x.com",
		},
		{
			name:   "Empty email still signs",
			userID: uuid.New(),
			email:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, expiresAt, err := GenerateToken(tt.userID, tt.email, getTestConfig())

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Greater(t, expiresAt, int64(0))
		})
	}
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.New()

	token, _, err := GenerateToken(userID, "a@x.com", cfg)
	require.NoError(t, err)

	t.Run("Valid token round trip", func(t *testing.T) {
		claims, err := ValidateToken(token, cfg.JWT.Secret)

		require.NoError(t, err)
		require.NotNil(t, claims)
		assert.Equal(t, userID.String(), fmt.Sprintf("%v", (*claims)["user_id"]))
		assert.Equal(t, "a@x.com", (*claims)["email"])
		assert.Equal(t, cfg.JWT.Issuer, (*claims)["iss"])
	})

	t.Run("Wrong secret rejected", func(t *testing.T) {
		claims, err := ValidateToken(token, "another-secret")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Garbage token rejected", func(t *testing.T) {
		claims, err := ValidateToken("not.a.token", cfg.JWT.Secret)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
