package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/models"
)

// GenerateToken issues a signed token for the notification stream. The
// subject is a passenger or driver ID; role distinguishes the two so the
// stream can route driver-only events.
func GenerateToken(userID uuid.UUID, role string, cfg models.JWTConfig) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := models.WebSocketClaims{
		UserID: userID.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt.Unix(), nil
}

// ValidateToken parses and verifies a token, returning its claims.
// Only HMAC signatures are accepted.
func ValidateToken(tokenString string, secret string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
