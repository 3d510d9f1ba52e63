package services

import (
	"time"

	"casaflow/internal/activity"
	apierrors "casaflow/internal/errors"
	"casaflow/internal/events"
	"casaflow/internal/handlers"
	"casaflow/internal/messaging"
	m "casaflow/internal/middlewares"
	"casaflow/internal/models"
	"casaflow/internal/sql"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MaintenanceService struct {
	DB             *gorm.DB
	Publisher      messaging.IPublisher
	ActivityLogger activity.IActivityLogger
}

func (s MaintenanceService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", handlers.ListHandler(s.List))
	r.With(m.Validate[models.MaintenanceCreateBody]).Post("/", handlers.CreateHandler(s.Create))

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", handlers.GetHandler(s.Get))
		r.With(m.Validate[models.MaintenanceUpdateBody]).Patch("/", handlers.UpdateHandler(s.Update))
		r.Delete("/", handlers.DeleteHandler(s.Delete))
		r.With(m.Validate[models.MaintenanceTransitionBody]).
			Post("/transition", handlers.UpdateHandler(s.Transition))
	})

	return r
}

func (s MaintenanceService) logActivity(
	logger *zap.Logger,
	message string,
	request *models.MaintenanceRequest,
	claims models.UserClaims,
) {
	action := models.Activity{
		Message: message,
		Object:  request.ToActivity(),
		Filter: map[string]string{
			"action":      message,
			"request_id":  request.ID.String(),
			"property_id": request.PropertyID.String(),
			"user_id":     claims.UserID.String(),
			"object_type": "maintenance_request",
		},
	}
	if logErr := s.ActivityLogger.Send(action); logErr != nil {
		logger.Error("Failed to log maintenance activity", zap.Error(logErr))
	}
}

// contactEmail finds the tenant on the unit's active lease, if any. The
// status-change notification goes to them.
func (s MaintenanceService) contactEmail(request *models.MaintenanceRequest) string {
	var lease models.Lease
	err := s.DB.Preload("Tenant").
		Where("property_id = ? AND unit = ? AND status = ?",
			request.PropertyID, request.Unit, models.LeaseStatusActive).
		First(&lease).Error
	if err != nil {
		return ""
	}
	return lease.Tenant.Email
}

func (s MaintenanceService) List(_ *zap.Logger, _ models.UserClaims) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	if err := s.DB.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (s MaintenanceService) Get(_ *zap.Logger, _ models.UserClaims, id uuid.UUID) (models.MaintenanceRequest, error) {
	return sql.GetMaintenanceRequestByID(s.DB, id)
}

func (s MaintenanceService) Create(
	logger *zap.Logger,
	claims models.UserClaims,
	body models.MaintenanceCreateBody,
) (models.MaintenanceRequest, error) {
	if _, err := sql.GetPropertyByID(s.DB, body.PropertyID); err != nil {
		return models.MaintenanceRequest{}, err
	}

	request := models.MaintenanceRequest{
		PropertyID:  body.PropertyID,
		Unit:        body.Unit,
		Title:       body.Title,
		Description: body.Description,
		Status:      models.MaintenanceStatusOpen,
	}

	if err := s.DB.Create(&request).Error; err != nil {
		return models.MaintenanceRequest{}, err
	}

	s.logActivity(logger, activity.MaintenanceCreated, &request, claims)
	return request, nil
}

func (s MaintenanceService) Update(
	logger *zap.Logger,
	claims models.UserClaims,
	id uuid.UUID,
	body models.MaintenanceUpdateBody,
) (models.MaintenanceRequest, error) {
	request, err := sql.GetMaintenanceRequestByID(s.DB, id)
	if err != nil {
		return models.MaintenanceRequest{}, err
	}

	if body.Unit != nil {
		request.Unit = *body.Unit
	}
	if body.Title != nil {
		request.Title = *body.Title
	}
	if body.Description != nil {
		request.Description = *body.Description
	}

	if err := s.DB.Save(&request).Error; err != nil {
		return models.MaintenanceRequest{}, err
	}

	s.logActivity(logger, activity.MaintenanceUpdated, &request, claims)
	return request, nil
}

func (s MaintenanceService) Transition(
	logger *zap.Logger,
	claims models.UserClaims,
	id uuid.UUID,
	body models.MaintenanceTransitionBody,
) (models.MaintenanceRequest, error) {
	request, err := sql.GetMaintenanceRequestByID(s.DB, id)
	if err != nil {
		return models.MaintenanceRequest{}, err
	}

	if !request.Status.CanTransitionTo(body.Status) {
		return models.MaintenanceRequest{}, apierrors.NewAPIError(409, apierrors.ErrInvalidStatusTransition)
	}

	request.Status = body.Status
	if body.Status == models.MaintenanceStatusResolved {
		now := time.Now()
		request.ResolvedAt = &now
	}

	if err := s.DB.Save(&request).Error; err != nil {
		return models.MaintenanceRequest{}, err
	}

	property, err := sql.GetPropertyByID(s.DB, request.PropertyID)
	if err == nil {
		events.NewMaintenanceStatusChanged(s.Publisher, &request, property.Name, s.contactEmail(&request)).
			Trigger()
	}

	s.logActivity(logger, activity.MaintenanceStatusChanged, &request, claims)
	return request, nil
}

func (s MaintenanceService) Delete(logger *zap.Logger, claims models.UserClaims, id uuid.UUID) error {
	request, err := sql.GetMaintenanceRequestByID(s.DB, id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&request).Error; err != nil {
		return err
	}

	s.logActivity(logger, activity.MaintenanceDeleted, &request, claims)
	return nil
}
