package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims identify the principal of a session. Fresh is true only for tokens
// issued directly by a password login.
type Claims struct {
	UserID uint `json:"user_id"`
	Fresh  bool `json:"fresh"`
	jwt.RegisteredClaims
}

var (
	jwtSecret string
	tokenTTL  = 24 * time.Hour
)

// ConfigureJWT is called once at startup, before the server accepts requests.
func ConfigureJWT(secret string, ttl time.Duration) {
	jwtSecret = secret
	if ttl > 0 {
		tokenTTL = ttl
	}
}

func TokenTTL() time.Duration {
	return tokenTTL
}

func GenerateJWT(userID uint, fresh bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Fresh:  fresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(getJWTSecret()))
}

func ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(getJWTSecret()), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.UserID == 0 {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func getJWTSecret() string {
	if jwtSecret != "" {
		return jwtSecret
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return secret
	}
	return "default-secret"
}
