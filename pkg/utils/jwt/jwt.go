package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"emlakpark_backend/internal/model"
)

type Claims struct {
	UserID   int        `json:"user_id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
	jwt.RegisteredClaims
}

// SessionTTL is the fixed lifetime of a session token; there is no
// refresh, the client logs in again after expiry.
const SessionTTL = 24 * time.Hour

var jwtSecret = []byte("emlakpark-dev-secret")

// SetSecret must be called once at startup, before any token is
// issued or validated.
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

func GenerateToken(userID int, username string, role model.Role) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	return token.SignedString(jwtSecret)
}

func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, err
}
