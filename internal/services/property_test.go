package services

import (
	"regexp"
	"testing"

	apierrors "casaflow/internal/errors"
	"casaflow/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPropertyGet(t *testing.T) {
	gormDB, mock := newMockDB(t)
	service := PropertyService{DB: gormDB, ActivityLogger: &MockActivityLogger{}}
	propertyID := uuid.New()

	t.Run("should return the property when it exists", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "address", "city", "unit_count"}).
			AddRow(propertyID, "Maple Court", "12 Maple St", "Lyon", 8)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "properties" WHERE id = $1 AND "properties"."deleted_at" IS NULL ORDER BY "properties"."id" LIMIT $2`)).
			WithArgs(propertyID, 1).
			WillReturnRows(rows)

		property, err := service.Get(zap.NewNop(), models.UserClaims{}, propertyID)
		require.NoError(t, err)
		assert.Equal(t, "Maple Court", property.Name)
		assert.Equal(t, 8, property.UnitCount)
	})

	t.Run("should return 404 when the property is missing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "properties" WHERE id = $1 AND "properties"."deleted_at" IS NULL ORDER BY "properties"."id" LIMIT $2`)).
			WithArgs(propertyID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := service.Get(zap.NewNop(), models.UserClaims{}, propertyID)
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
		assert.Equal(t, apierrors.ErrPropertyNotFound, apiErr.Message)
	})
}

func TestPropertyCreate(t *testing.T) {
	gormDB, mock := newMockDB(t)
	activityLogger := &MockActivityLogger{}
	service := PropertyService{DB: gormDB, ActivityLogger: activityLogger}
	propertyID := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "properties"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(propertyID))
	mock.ExpectCommit()

	property, err := service.Create(zap.NewNop(), models.UserClaims{UserID: userID}, models.PropertyCreateBody{
		Name:      "Maple Court",
		Address:   "12 Maple St",
		City:      "Lyon",
		UnitCount: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, propertyID, property.ID)
	assert.Equal(t, "Maple Court", property.Name)

	require.Len(t, activityLogger.sent, 1)
	assert.Equal(t, "property created", activityLogger.sent[0].Message)
	assert.Equal(t, userID.String(), activityLogger.sent[0].Filter["user_id"])
}

func TestPropertyDelete(t *testing.T) {
	gormDB, mock := newMockDB(t)
	activityLogger := &MockActivityLogger{}
	service := PropertyService{DB: gormDB, ActivityLogger: activityLogger}
	propertyID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "name", "address"}).
		AddRow(propertyID, "Maple Court", "12 Maple St")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "properties" WHERE id = $1 AND "properties"."deleted_at" IS NULL ORDER BY "properties"."id" LIMIT $2`)).
		WithArgs(propertyID, 1).
		WillReturnRows(rows)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "properties" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.Delete(zap.NewNop(), models.UserClaims{}, propertyID)
	require.NoError(t, err)

	require.Len(t, activityLogger.sent, 1)
	assert.Equal(t, "property deleted", activityLogger.sent[0].Message)
}
