package services

import (
	"casaflow/internal/activity"
	"casaflow/internal/handlers"
	m "casaflow/internal/middlewares"
	"casaflow/internal/models"
	"casaflow/internal/sql"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TenantService struct {
	DB             *gorm.DB
	ActivityLogger activity.IActivityLogger
}

func (s TenantService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", handlers.ListHandler(s.List))
	r.With(m.Validate[models.TenantCreateBody]).Post("/", handlers.CreateHandler(s.Create))

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", handlers.GetHandler(s.Get))
		r.With(m.Validate[models.TenantUpdateBody]).Patch("/", handlers.UpdateHandler(s.Update))
		r.Delete("/", handlers.DeleteHandler(s.Delete))
	})

	return r
}

func (s TenantService) logActivity(logger *zap.Logger, message string, tenant *models.Tenant, claims models.UserClaims) {
	action := models.Activity{
		Message: message,
		Object:  tenant.ToActivity(),
		Filter: map[string]string{
			"action":      message,
			"tenant_id":   tenant.ID.String(),
			"user_id":     claims.UserID.String(),
			"object_type": "tenant",
		},
	}
	if logErr := s.ActivityLogger.Send(action); logErr != nil {
		logger.Error("Failed to log tenant activity", zap.Error(logErr))
	}
}

func (s TenantService) List(_ *zap.Logger, _ models.UserClaims) ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := s.DB.Order("created_at DESC").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

func (s TenantService) Get(_ *zap.Logger, _ models.UserClaims, id uuid.UUID) (models.Tenant, error) {
	return sql.GetTenantByID(s.DB, id)
}

func (s TenantService) Create(
	logger *zap.Logger,
	claims models.UserClaims,
	body models.TenantCreateBody,
) (models.Tenant, error) {
	tenant := models.Tenant{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
	}

	if err := s.DB.Create(&tenant).Error; err != nil {
		return models.Tenant{}, err
	}

	s.logActivity(logger, activity.TenantCreated, &tenant, claims)
	return tenant, nil
}

func (s TenantService) Update(
	logger *zap.Logger,
	claims models.UserClaims,
	id uuid.UUID,
	body models.TenantUpdateBody,
) (models.Tenant, error) {
	tenant, err := sql.GetTenantByID(s.DB, id)
	if err != nil {
		return models.Tenant{}, err
	}

	if body.FirstName != nil {
		tenant.FirstName = *body.FirstName
	}
	if body.LastName != nil {
		tenant.LastName = *body.LastName
	}
	if body.Email != nil {
		tenant.Email = *body.Email
	}
	if body.Phone != nil {
		tenant.Phone = *body.Phone
	}

	if err := s.DB.Save(&tenant).Error; err != nil {
		return models.Tenant{}, err
	}

	s.logActivity(logger, activity.TenantUpdated, &tenant, claims)
	return tenant, nil
}

func (s TenantService) Delete(logger *zap.Logger, claims models.UserClaims, id uuid.UUID) error {
	tenant, err := sql.GetTenantByID(s.DB, id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&tenant).Error; err != nil {
		return err
	}

	s.logActivity(logger, activity.TenantDeleted, &tenant, claims)
	return nil
}
