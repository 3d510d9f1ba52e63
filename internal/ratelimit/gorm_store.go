package ratelimit

import (
	"context"
	"time"

	"casaflow/internal/models"

	"gorm.io/gorm"
)

// GormAttemptStore keeps the attempt log in the waitlist_attempts table.
type GormAttemptStore struct {
	db *gorm.DB
}

func NewGormAttemptStore(db *gorm.DB) *GormAttemptStore {
	return &GormAttemptStore{db: db}
}

func (s *GormAttemptStore) CountSince(ctx context.Context, identifier string, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.WaitlistAttempt{}).
		Where("identifier = ? AND created_at >= ?", identifier, since).
		Count(&count).Error
	return count, err
}

func (s *GormAttemptStore) Record(ctx context.Context, identifier string, at time.Time) error {
	attempt := models.WaitlistAttempt{
		Identifier: identifier,
		CreatedAt:  at,
	}
	return s.db.WithContext(ctx).Create(&attempt).Error
}

// DeleteBefore prunes attempts older than the cutoff. The limiter never
// calls this; housekeeping belongs to the cleanup worker.
func (s *GormAttemptStore) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.WaitlistAttempt{})
	return result.RowsAffected, result.Error
}
