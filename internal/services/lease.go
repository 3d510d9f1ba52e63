package services

import (
	"time"

	"casaflow/internal/activity"
	apierrors "casaflow/internal/errors"
	"casaflow/internal/handlers"
	m "casaflow/internal/middlewares"
	"casaflow/internal/models"
	"casaflow/internal/sql"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LeaseService struct {
	DB             *gorm.DB
	ActivityLogger activity.IActivityLogger
}

func (s LeaseService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", handlers.ListHandler(s.List))
	r.With(m.Validate[models.LeaseCreateBody]).Post("/", handlers.CreateHandler(s.Create))

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", handlers.GetHandler(s.Get))
		r.With(m.Validate[models.LeaseUpdateBody]).Patch("/", handlers.UpdateHandler(s.Update))
		r.Delete("/", handlers.DeleteHandler(s.Delete))
		r.With(m.Validate[models.LeaseTransitionBody]).
			Post("/transition", handlers.UpdateHandler(s.Transition))
	})

	return r
}

func (s LeaseService) logActivity(logger *zap.Logger, message string, lease *models.Lease, claims models.UserClaims) {
	action := models.Activity{
		Message: message,
		Object:  lease.ToActivity(),
		Filter: map[string]string{
			"action":      message,
			"lease_id":    lease.ID.String(),
			"property_id": lease.PropertyID.String(),
			"tenant_id":   lease.TenantID.String(),
			"user_id":     claims.UserID.String(),
			"object_type": "lease",
		},
	}
	if logErr := s.ActivityLogger.Send(action); logErr != nil {
		logger.Error("Failed to log lease activity", zap.Error(logErr))
	}
}

func (s LeaseService) List(_ *zap.Logger, _ models.UserClaims) ([]models.Lease, error) {
	var leases []models.Lease
	if err := s.DB.Order("created_at DESC").Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

func (s LeaseService) Get(_ *zap.Logger, _ models.UserClaims, id uuid.UUID) (models.Lease, error) {
	return sql.GetLeaseByID(s.DB, id)
}

func (s LeaseService) Create(
	logger *zap.Logger,
	claims models.UserClaims,
	body models.LeaseCreateBody,
) (models.Lease, error) {
	if _, err := sql.GetPropertyByID(s.DB, body.PropertyID); err != nil {
		return models.Lease{}, err
	}
	if _, err := sql.GetTenantByID(s.DB, body.TenantID); err != nil {
		return models.Lease{}, err
	}

	occupied, err := sql.CountActiveLeasesForUnit(s.DB, body.PropertyID, body.Unit)
	if err != nil {
		return models.Lease{}, err
	}
	if occupied > 0 {
		return models.Lease{}, apierrors.NewAPIError(409, apierrors.ErrUnitOccupied)
	}

	lease := models.Lease{
		PropertyID: body.PropertyID,
		TenantID:   body.TenantID,
		Unit:       body.Unit,
		Status:     models.LeaseStatusDraft,
		RentCents:  body.RentCents,
		StartDate:  body.StartDate,
	}

	if err := s.DB.Create(&lease).Error; err != nil {
		return models.Lease{}, err
	}

	s.logActivity(logger, activity.LeaseCreated, &lease, claims)
	return lease, nil
}

func (s LeaseService) Update(
	logger *zap.Logger,
	claims models.UserClaims,
	id uuid.UUID,
	body models.LeaseUpdateBody,
) (models.Lease, error) {
	lease, err := sql.GetLeaseByID(s.DB, id)
	if err != nil {
		return models.Lease{}, err
	}

	if body.Unit != nil {
		lease.Unit = *body.Unit
	}
	if body.RentCents != nil {
		lease.RentCents = *body.RentCents
	}
	if body.EndDate != nil {
		lease.EndDate = body.EndDate
	}

	if err := s.DB.Save(&lease).Error; err != nil {
		return models.Lease{}, err
	}

	s.logActivity(logger, activity.LeaseUpdated, &lease, claims)
	return lease, nil
}

// Transition moves a lease through its status workflow. Only the moves the
// model permits are accepted; anything else is a 409.
func (s LeaseService) Transition(
	logger *zap.Logger,
	claims models.UserClaims,
	id uuid.UUID,
	body models.LeaseTransitionBody,
) (models.Lease, error) {
	lease, err := sql.GetLeaseByID(s.DB, id)
	if err != nil {
		return models.Lease{}, err
	}

	if !lease.Status.CanTransitionTo(body.Status) {
		return models.Lease{}, apierrors.NewAPIError(409, apierrors.ErrInvalidStatusTransition)
	}

	lease.Status = body.Status
	if (body.Status == models.LeaseStatusEnded || body.Status == models.LeaseStatusTerminated) &&
		lease.EndDate == nil {
		now := time.Now()
		lease.EndDate = &now
	}

	if err := s.DB.Save(&lease).Error; err != nil {
		return models.Lease{}, err
	}

	s.logActivity(logger, activity.LeaseStatusChanged, &lease, claims)
	return lease, nil
}

func (s LeaseService) Delete(logger *zap.Logger, claims models.UserClaims, id uuid.UUID) error {
	lease, err := sql.GetLeaseByID(s.DB, id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&lease).Error; err != nil {
		return err
	}

	s.logActivity(logger, activity.LeaseDeleted, &lease, claims)
	return nil
}
