package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaitlistAttempt is one accepted rate-limited waitlist action. Rows are
// append-only; old attempts simply fall outside the trailing window and are
// pruned by the cleanup worker.
type WaitlistAttempt struct {
	ID         uuid.UUID `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	Identifier string    `gorm:"not null;index:idx_waitlist_attempts_window"    json:"identifier"`
	CreatedAt  time.Time `gorm:"index:idx_waitlist_attempts_window"             json:"created_at"`
}

// BeforeCreate assigns an id when the database cannot, such as sqlite where
// gen_random_uuid is unavailable.
func (a *WaitlistAttempt) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type WaitlistJoinBody struct {
	Email    string `json:"email"     validate:"required,email,max=254"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Message  string `json:"message"   validate:"max=2000"`
}

type WaitlistEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"not null"                                       json:"email"`
	FullName  string    `gorm:"not null"                                       json:"full_name"`
	Message   string    `                                                      json:"message"`
	CreatedAt time.Time `                                                      json:"created_at"`
}
