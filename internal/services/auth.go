package services

import (
	"errors"

	apierrors "casaflow/internal/errors"
	"casaflow/internal/handlers"
	"casaflow/internal/helpers"
	m "casaflow/internal/middlewares"
	"casaflow/internal/models"

	"github.com/alexedwards/argon2id"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	DB                *gorm.DB
	JWTSecret         string
	AccessTokenExpiry int
}

func (s AuthService) Routes() chi.Router {
	r := chi.NewRouter()
	r.With(m.Validate[models.AuthLoginBody]).Post("/login", handlers.CreateHandler(s.Login))
	return r
}

// Login checks credentials and mints an access token. Unknown emails and bad
// passwords share one error so the endpoint does not leak which accounts
// exist.
func (s AuthService) Login(
	logger *zap.Logger,
	_ models.UserClaims,
	body models.AuthLoginBody,
) (models.AuthLoginResponse, error) {
	var user models.User
	if err := s.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AuthLoginResponse{}, apierrors.NewAPIError(401, apierrors.ErrInvalidCredentials)
		}
		return models.AuthLoginResponse{}, err
	}

	match, err := argon2id.ComparePasswordAndHash(body.Password, user.HashedPassword)
	if err != nil {
		return models.AuthLoginResponse{}, err
	}
	if !match {
		return models.AuthLoginResponse{}, apierrors.NewAPIError(401, apierrors.ErrInvalidCredentials)
	}

	token, err := helpers.NewAccessToken(s.JWTSecret, &user, s.AccessTokenExpiry)
	if err != nil {
		logger.Error("Failed to sign access token", zap.Error(err))
		return models.AuthLoginResponse{}, err
	}

	return models.AuthLoginResponse{AccessToken: token}, nil
}
