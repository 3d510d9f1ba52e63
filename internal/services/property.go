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

type PropertyService struct {
	DB             *gorm.DB
	ActivityLogger activity.IActivityLogger
}

func (s PropertyService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", handlers.ListHandler(s.List))
	r.With(m.Validate[models.PropertyCreateBody]).Post("/", handlers.CreateHandler(s.Create))

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", handlers.GetHandler(s.Get))
		r.With(m.Validate[models.PropertyUpdateBody]).Patch("/", handlers.UpdateHandler(s.Update))
		r.Delete("/", handlers.DeleteHandler(s.Delete))
	})

	return r
}

func (s PropertyService) logActivity(logger *zap.Logger, message string, property *models.Property, claims models.UserClaims) {
	action := models.Activity{
		Message: message,
		Object:  property.ToActivity(),
		Filter: map[string]string{
			"action":      message,
			"property_id": property.ID.String(),
			"user_id":     claims.UserID.String(),
			"object_type": "property",
		},
	}
	if logErr := s.ActivityLogger.Send(action); logErr != nil {
		logger.Error("Failed to log property activity", zap.Error(logErr))
	}
}

func (s PropertyService) List(_ *zap.Logger, _ models.UserClaims) ([]models.Property, error) {
	var properties []models.Property
	if err := s.DB.Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (s PropertyService) Get(_ *zap.Logger, _ models.UserClaims, id uuid.UUID) (models.Property, error) {
	return sql.GetPropertyByID(s.DB, id)
}

func (s PropertyService) Create(
	logger *zap.Logger,
	claims models.UserClaims,
	body models.PropertyCreateBody,
) (models.Property, error) {
	property := models.Property{
		Name:      body.Name,
		Address:   body.Address,
		City:      body.City,
		UnitCount: body.UnitCount,
	}

	if err := s.DB.Create(&property).Error; err != nil {
		return models.Property{}, err
	}

	s.logActivity(logger, activity.PropertyCreated, &property, claims)
	return property, nil
}

func (s PropertyService) Update(
	logger *zap.Logger,
	claims models.UserClaims,
	id uuid.UUID,
	body models.PropertyUpdateBody,
) (models.Property, error) {
	property, err := sql.GetPropertyByID(s.DB, id)
	if err != nil {
		return models.Property{}, err
	}

	if body.Name != nil {
		property.Name = *body.Name
	}
	if body.Address != nil {
		property.Address = *body.Address
	}
	if body.City != nil {
		property.City = *body.City
	}
	if body.UnitCount != nil {
		property.UnitCount = *body.UnitCount
	}

	if err := s.DB.Save(&property).Error; err != nil {
		return models.Property{}, err
	}

	s.logActivity(logger, activity.PropertyUpdated, &property, claims)
	return property, nil
}

func (s PropertyService) Delete(logger *zap.Logger, claims models.UserClaims, id uuid.UUID) error {
	property, err := sql.GetPropertyByID(s.DB, id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&property).Error; err != nil {
		return err
	}

	s.logActivity(logger, activity.PropertyDeleted, &property, claims)
	return nil
}
