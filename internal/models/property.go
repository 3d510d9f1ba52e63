package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Property struct {
	ID        uuid.UUID      `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"not null;default:null"                          json:"name"       validate:"required"`
	Address   string         `gorm:"not null;default:null"                          json:"address"    validate:"required"`
	City      string         `                                                      json:"city"`
	UnitCount int            `                                                      json:"unit_count"`
	Leases    []Lease        `                                                      json:"leases,omitempty"`
	CreatedAt time.Time      `                                                      json:"created_at"`
	UpdatedAt time.Time      `                                                      json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index"                                          json:"-"`
}

type PropertyActivity struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (p *Property) ToActivity() PropertyActivity {
	return PropertyActivity{
		ID:   p.ID,
		Name: p.Name,
	}
}

type PropertyCreateBody struct {
	Name      string `json:"name"       validate:"required,max=200"`
	Address   string `json:"address"    validate:"required,max=500"`
	City      string `json:"city"       validate:"max=100"`
	UnitCount int    `json:"unit_count" validate:"gte=0,lte=10000"`
}

type PropertyUpdateBody struct {
	Name      *string `json:"name"       validate:"omitempty,max=200"`
	Address   *string `json:"address"    validate:"omitempty,max=500"`
	City      *string `json:"city"       validate:"omitempty,max=100"`
	UnitCount *int    `json:"unit_count" validate:"omitempty,gte=0,lte=10000"`
}
