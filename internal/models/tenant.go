package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tenant struct {
	ID        uuid.UUID      `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	FirstName string         `gorm:"not null;default:null"                          json:"first_name" validate:"required"`
	LastName  string         `gorm:"not null;default:null"                          json:"last_name"  validate:"required"`
	Email     string         `gorm:"not null;uniqueIndex"                           json:"email"      validate:"required,email"`
	Phone     string         `                                                      json:"phone"`
	Leases    []Lease        `                                                      json:"leases,omitempty"`
	CreatedAt time.Time      `                                                      json:"created_at"`
	UpdatedAt time.Time      `                                                      json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index"                                          json:"-"`
}

type TenantActivity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func (t *Tenant) ToActivity() TenantActivity {
	return TenantActivity{
		ID:    t.ID,
		Email: t.Email,
	}
}

type TenantCreateBody struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Email     string `json:"email"      validate:"required,email,max=254"`
	Phone     string `json:"phone"      validate:"max=30"`
}

type TenantUpdateBody struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=100"`
	Email     *string `json:"email"      validate:"omitempty,email,max=254"`
	Phone     *string `json:"phone"      validate:"omitempty,max=30"`
}
