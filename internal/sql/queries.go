package sql

import (
	"errors"

	apierrors "casaflow/internal/errors"
	"casaflow/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetPropertyByID(db *gorm.DB, id uuid.UUID) (models.Property, error) {
	var property models.Property

	if err := db.Where("id = ?", id).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Property{}, apierrors.NewAPIError(404, apierrors.ErrPropertyNotFound)
		}
		return models.Property{}, err
	}

	return property, nil
}

func GetTenantByID(db *gorm.DB, id uuid.UUID) (models.Tenant, error) {
	var tenant models.Tenant

	if err := db.Where("id = ?", id).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Tenant{}, apierrors.NewAPIError(404, apierrors.ErrTenantNotFound)
		}
		return models.Tenant{}, err
	}

	return tenant, nil
}

func GetLeaseByID(db *gorm.DB, id uuid.UUID) (models.Lease, error) {
	var lease models.Lease

	if err := db.Where("id = ?", id).First(&lease).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Lease{}, apierrors.NewAPIError(404, apierrors.ErrLeaseNotFound)
		}
		return models.Lease{}, err
	}

	return lease, nil
}

func GetMaintenanceRequestByID(db *gorm.DB, id uuid.UUID) (models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest

	if err := db.Where("id = ?", id).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MaintenanceRequest{}, apierrors.NewAPIError(404, apierrors.ErrMaintenanceNotFound)
		}
		return models.MaintenanceRequest{}, err
	}

	return request, nil
}

// CountActiveLeasesForUnit reports how many active leases exist for the
// property/unit pair, used to reject double-occupancy.
func CountActiveLeasesForUnit(db *gorm.DB, propertyID uuid.UUID, unit string) (int64, error) {
	var count int64
	err := db.Model(&models.Lease{}).
		Where("property_id = ? AND unit = ? AND status = ?", propertyID, unit, models.LeaseStatusActive).
		Count(&count).Error
	return count, err
}
