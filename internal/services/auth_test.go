package services

import (
	"regexp"
	"testing"

	apierrors "casaflow/internal/errors"
	"casaflow/internal/helpers"
	"casaflow/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogin(t *testing.T) {
	jwtSecret := "test-secret-key-for-jwt-signing"
	userID := uuid.New()

	hashedPassword, err := helpers.CreateHash("correct-password")
	require.NoError(t, err)

	userQuery := regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)

	t.Run("should return a token for valid credentials", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		service := AuthService{DB: gormDB, JWTSecret: jwtSecret, AccessTokenExpiry: 60}

		rows := sqlmock.NewRows([]string{"id", "email", "hashed_password", "role"}).
			AddRow(userID, "admin@example.com", hashedPassword, models.RoleAdmin)
		mock.ExpectQuery(userQuery).
			WithArgs("admin@example.com", 1).
			WillReturnRows(rows)

		response, err := service.Login(zap.NewNop(), models.UserClaims{}, models.AuthLoginBody{
			Email:    "admin@example.com",
			Password: "correct-password",
		})
		require.NoError(t, err)
		require.NotEmpty(t, response.AccessToken)

		claims, err := helpers.ParseAccessToken(jwtSecret, "Bearer "+response.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, models.RoleAdmin, claims.Role)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		service := AuthService{DB: gormDB, JWTSecret: jwtSecret, AccessTokenExpiry: 60}

		rows := sqlmock.NewRows([]string{"id", "email", "hashed_password", "role"}).
			AddRow(userID, "admin@example.com", hashedPassword, models.RoleAdmin)
		mock.ExpectQuery(userQuery).
			WithArgs("admin@example.com", 1).
			WillReturnRows(rows)

		_, err := service.Login(zap.NewNop(), models.UserClaims{}, models.AuthLoginBody{
			Email:    "admin@example.com",
			Password: "wrong-password",
		})
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 401, apiErr.Status)
		assert.Equal(t, apierrors.ErrInvalidCredentials, apiErr.Message)
	})

	t.Run("should reject an unknown email with the same error", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		service := AuthService{DB: gormDB, JWTSecret: jwtSecret, AccessTokenExpiry: 60}

		mock.ExpectQuery(userQuery).
			WithArgs("nobody@example.com", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := service.Login(zap.NewNop(), models.UserClaims{}, models.AuthLoginBody{
			Email:    "nobody@example.com",
			Password: "correct-password",
		})
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 401, apiErr.Status)
		assert.Equal(t, apierrors.ErrInvalidCredentials, apiErr.Message)
	})
}
