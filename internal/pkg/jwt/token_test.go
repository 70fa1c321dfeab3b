package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "tumpangan",
	}
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, "passenger", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(tokenString, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, "passenger", claims["role"])
	assert.Equal(t, "tumpangan", claims["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := models.JWTConfig{Secret: "right-secret", Expiration: 60, Issuer: "tumpangan"}

	tokenString, _, err := GenerateToken(uuid.New(), "driver", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "wrong-secret")
	assert.Error(t, err)
}
