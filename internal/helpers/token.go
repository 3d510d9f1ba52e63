package helpers

import (
	"errors"
	"strings"
	"time"

	"casaflow/internal/configuration"
	"casaflow/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// NewAccessToken creates a signed HS256 access token for the given user.
func NewAccessToken(jwtSecret string, user *models.User, expiryMinutes int) (string, error) {
	claims := models.UserClaims{
		Email:  user.Email,
		UserID: user.ID,
		Role:   user.Role,
		Issuer: configuration.AppName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  &jwt.NumericDate{Time: time.Now()},
			ExpiresAt: &jwt.NumericDate{Time: time.Now().Add(time.Minute * time.Duration(expiryMinutes))},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ParseAccessToken parses and validates a bearer token. It validates the
// signature and expiry only.
func ParseAccessToken(jwtSecret string, tokenString string) (models.UserClaims, error) {
	if !strings.HasPrefix(tokenString, "Bearer ") {
		return models.UserClaims{}, errors.New("invalid token")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	claims := &models.UserClaims{}

	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		},
	)
	if err != nil {
		return models.UserClaims{}, errors.New("invalid token")
	}

	return *claims, nil
}
