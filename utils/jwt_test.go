package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	ConfigureJWT("test-secret", time.Hour)

	token, err := GenerateJWT(42, true)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.Fresh)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	ConfigureJWT("secret-one", time.Hour)
	token, err := GenerateJWT(1, true)
	require.NoError(t, err)

	ConfigureJWT("secret-two", time.Hour)
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	ConfigureJWT("test-secret", time.Hour)

	claims := &Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWT_RejectsZeroUser(t *testing.T) {
	ConfigureJWT("test-secret", time.Hour)

	token, err := GenerateJWT(0, true)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}
