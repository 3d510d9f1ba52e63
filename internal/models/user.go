package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

type User struct {
	ID             uuid.UUID      `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	Email          string         `gorm:"not null;uniqueIndex"                           json:"email" validate:"required,email"`
	HashedPassword string         `gorm:"not null"                                       json:"-"`
	Role           Role           `gorm:"not null;default:manager"                       json:"role"`
	CreatedAt      time.Time      `                                                      json:"created_at"`
	UpdatedAt      time.Time      `                                                      json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index"                                          json:"-"`
}

type UserClaimKey struct{}

type UserClaims struct {
	Email  string    `json:"email"`
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
	Issuer string    `json:"iss"`
	jwt.RegisteredClaims
}
