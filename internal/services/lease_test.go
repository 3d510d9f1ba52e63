package services

import (
	"regexp"
	"testing"
	"time"

	apierrors "casaflow/internal/errors"
	"casaflow/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func leaseQuery() string {
	return regexp.QuoteMeta(`SELECT * FROM "leases" WHERE id = $1 AND "leases"."deleted_at" IS NULL ORDER BY "leases"."id" LIMIT $2`)
}

func leaseRow(id uuid.UUID, status models.LeaseStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "property_id", "tenant_id", "unit", "status", "rent_cents", "start_date"}).
		AddRow(id, uuid.New(), uuid.New(), "2B", status, 95000, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestLeaseTransition(t *testing.T) {
	leaseID := uuid.New()

	t.Run("should activate a draft lease", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		activityLogger := &MockActivityLogger{}
		service := LeaseService{DB: gormDB, ActivityLogger: activityLogger}

		mock.ExpectQuery(leaseQuery()).
			WithArgs(leaseID, 1).
			WillReturnRows(leaseRow(leaseID, models.LeaseStatusDraft))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "leases" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		lease, err := service.Transition(zap.NewNop(), models.UserClaims{}, leaseID,
			models.LeaseTransitionBody{Status: models.LeaseStatusActive})
		require.NoError(t, err)
		assert.Equal(t, models.LeaseStatusActive, lease.Status)
		assert.Nil(t, lease.EndDate)

		require.Len(t, activityLogger.sent, 1)
		assert.Equal(t, "lease status changed", activityLogger.sent[0].Message)
	})

	t.Run("should stamp the end date when a lease ends", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		service := LeaseService{DB: gormDB, ActivityLogger: &MockActivityLogger{}}

		mock.ExpectQuery(leaseQuery()).
			WithArgs(leaseID, 1).
			WillReturnRows(leaseRow(leaseID, models.LeaseStatusActive))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "leases" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		lease, err := service.Transition(zap.NewNop(), models.UserClaims{}, leaseID,
			models.LeaseTransitionBody{Status: models.LeaseStatusEnded})
		require.NoError(t, err)
		assert.Equal(t, models.LeaseStatusEnded, lease.Status)
		require.NotNil(t, lease.EndDate)
	})

	t.Run("should reject a draft lease ending directly", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		service := LeaseService{DB: gormDB, ActivityLogger: &MockActivityLogger{}}

		mock.ExpectQuery(leaseQuery()).
			WithArgs(leaseID, 1).
			WillReturnRows(leaseRow(leaseID, models.LeaseStatusDraft))

		_, err := service.Transition(zap.NewNop(), models.UserClaims{}, leaseID,
			models.LeaseTransitionBody{Status: models.LeaseStatusEnded})
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 409, apiErr.Status)
		assert.Equal(t, apierrors.ErrInvalidStatusTransition, apiErr.Message)
	})

	t.Run("should reject any move out of a terminal status", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		service := LeaseService{DB: gormDB, ActivityLogger: &MockActivityLogger{}}

		mock.ExpectQuery(leaseQuery()).
			WithArgs(leaseID, 1).
			WillReturnRows(leaseRow(leaseID, models.LeaseStatusEnded))

		_, err := service.Transition(zap.NewNop(), models.UserClaims{}, leaseID,
			models.LeaseTransitionBody{Status: models.LeaseStatusActive})
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 409, apiErr.Status)
	})
}

func TestLeaseCreateRejectsOccupiedUnit(t *testing.T) {
	gormDB, mock := newMockDB(t)
	service := LeaseService{DB: gormDB, ActivityLogger: &MockActivityLogger{}}
	propertyID := uuid.New()
	tenantID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "properties" WHERE id = $1 AND "properties"."deleted_at" IS NULL ORDER BY "properties"."id" LIMIT $2`)).
		WithArgs(propertyID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(propertyID, "Maple Court"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "tenants" WHERE id = $1 AND "tenants"."deleted_at" IS NULL ORDER BY "tenants"."id" LIMIT $2`)).
		WithArgs(tenantID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(tenantID, "one@example.com"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "leases" WHERE (property_id = $1 AND unit = $2 AND status = $3) AND "leases"."deleted_at" IS NULL`)).
		WithArgs(propertyID, "2B", models.LeaseStatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := service.Create(zap.NewNop(), models.UserClaims{}, models.LeaseCreateBody{
		PropertyID: propertyID,
		TenantID:   tenantID,
		Unit:       "2B",
		RentCents:  95000,
		StartDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
	assert.Equal(t, apierrors.ErrUnitOccupied, apiErr.Message)
}
