package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaseStatus string

const (
	LeaseStatusDraft      LeaseStatus = "draft"
	LeaseStatusActive     LeaseStatus = "active"
	LeaseStatusEnded      LeaseStatus = "ended"
	LeaseStatusTerminated LeaseStatus = "terminated"
)

// leaseTransitions lists the permitted status moves. Ended and terminated are
// terminal.
var leaseTransitions = map[LeaseStatus][]LeaseStatus{
	LeaseStatusDraft:  {LeaseStatusActive},
	LeaseStatusActive: {LeaseStatusEnded, LeaseStatusTerminated},
}

func (s LeaseStatus) CanTransitionTo(next LeaseStatus) bool {
	for _, allowed := range leaseTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Lease struct {
	ID         uuid.UUID      `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	PropertyID uuid.UUID      `gorm:"type:uuid;not null"                             json:"property_id" validate:"required"`
	Property   Property       `                                                      json:"-"`
	TenantID   uuid.UUID      `gorm:"type:uuid;not null"                             json:"tenant_id"   validate:"required"`
	Tenant     Tenant         `                                                      json:"-"`
	Unit       string         `gorm:"not null;default:null"                          json:"unit"        validate:"required"`
	Status     LeaseStatus    `gorm:"not null;default:draft"                         json:"status"`
	RentCents  int64          `                                                      json:"rent_cents"`
	StartDate  time.Time      `                                                      json:"start_date"`
	EndDate    *time.Time     `                                                      json:"end_date"`
	CreatedAt  time.Time      `                                                      json:"created_at"`
	UpdatedAt  time.Time      `                                                      json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index"                                          json:"-"`
}

type LeaseActivity struct {
	ID     uuid.UUID   `json:"id"`
	Unit   string      `json:"unit"`
	Status LeaseStatus `json:"status"`
}

func (l *Lease) ToActivity() LeaseActivity {
	return LeaseActivity{
		ID:     l.ID,
		Unit:   l.Unit,
		Status: l.Status,
	}
}

type LeaseCreateBody struct {
	PropertyID uuid.UUID `json:"property_id" validate:"required"`
	TenantID   uuid.UUID `json:"tenant_id"   validate:"required"`
	Unit       string    `json:"unit"        validate:"required,max=50"`
	RentCents  int64     `json:"rent_cents"  validate:"gte=0"`
	StartDate  time.Time `json:"start_date"  validate:"required"`
}

type LeaseUpdateBody struct {
	Unit      *string    `json:"unit"       validate:"omitempty,max=50"`
	RentCents *int64     `json:"rent_cents" validate:"omitempty,gte=0"`
	EndDate   *time.Time `json:"end_date"`
}

type LeaseTransitionBody struct {
	Status LeaseStatus `json:"status" validate:"required,oneof=draft active ended terminated"`
}
