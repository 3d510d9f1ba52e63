package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "open"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusResolved   MaintenanceStatus = "resolved"
	MaintenanceStatusCancelled  MaintenanceStatus = "cancelled"
)

var maintenanceTransitions = map[MaintenanceStatus][]MaintenanceStatus{
	MaintenanceStatusOpen:       {MaintenanceStatusInProgress, MaintenanceStatusCancelled},
	MaintenanceStatusInProgress: {MaintenanceStatusResolved},
}

func (s MaintenanceStatus) CanTransitionTo(next MaintenanceStatus) bool {
	for _, allowed := range maintenanceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type MaintenanceRequest struct {
	ID          uuid.UUID         `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	PropertyID  uuid.UUID         `gorm:"type:uuid;not null"                             json:"property_id" validate:"required"`
	Property    Property          `                                                      json:"-"`
	Unit        string            `                                                      json:"unit"`
	Title       string            `gorm:"not null;default:null"                          json:"title"       validate:"required"`
	Description string            `                                                      json:"description"`
	Status      MaintenanceStatus `gorm:"not null;default:open"                          json:"status"`
	ResolvedAt  *time.Time        `                                                      json:"resolved_at"`
	CreatedAt   time.Time         `                                                      json:"created_at"`
	UpdatedAt   time.Time         `                                                      json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index"                                          json:"-"`
}

type MaintenanceActivity struct {
	ID     uuid.UUID         `json:"id"`
	Title  string            `json:"title"`
	Status MaintenanceStatus `json:"status"`
}

func (m *MaintenanceRequest) ToActivity() MaintenanceActivity {
	return MaintenanceActivity{
		ID:     m.ID,
		Title:  m.Title,
		Status: m.Status,
	}
}

func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}

type MaintenanceCreateBody struct {
	PropertyID  uuid.UUID `json:"property_id" validate:"required"`
	Unit        string    `json:"unit"        validate:"max=50"`
	Title       string    `json:"title"       validate:"required,max=200"`
	Description string    `json:"description" validate:"max=5000"`
}

type MaintenanceUpdateBody struct {
	Unit        *string `json:"unit"        validate:"omitempty,max=50"`
	Title       *string `json:"title"       validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

type MaintenanceTransitionBody struct {
	Status MaintenanceStatus `json:"status" validate:"required,oneof=open in_progress resolved cancelled"`
}
