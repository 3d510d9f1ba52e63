package services

import (
	"net/http"
	"strconv"

	"casaflow/internal/activity"
	apierrors "casaflow/internal/errors"
	"casaflow/internal/events"
	"casaflow/internal/helpers"
	"casaflow/internal/messaging"
	m "casaflow/internal/middlewares"
	"casaflow/internal/models"
	"casaflow/internal/ratelimit"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WaitlistService exposes the one public write endpoint of the API. Joins are
// bounded per caller by the attempt-window limiter, not the per-minute
// throttle, so a burst of distinct visitors is fine while any single caller
// is capped over the trailing day.
type WaitlistService struct {
	DB             *gorm.DB
	Limiter        *ratelimit.Limiter
	Publisher      messaging.IPublisher
	ActivityLogger activity.IActivityLogger
	TrustedProxies []string
}

func (s WaitlistService) Routes() chi.Router {
	r := chi.NewRouter()
	r.With(m.Validate[models.WaitlistJoinBody]).Post("/", s.Join)
	return r
}

func writeRateLimitHeaders(w http.ResponseWriter, decision ratelimit.Decision) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(decision.Reset.Unix(), 10))
}

func (s WaitlistService) Join(w http.ResponseWriter, r *http.Request) {
	body := r.Context().Value(m.BodyKey{}).(models.WaitlistJoinBody)
	identifier := m.ClientIP(r, s.TrustedProxies)

	decision, err := s.Limiter.CheckAndRecord(r.Context(), identifier)
	if err != nil {
		zap.L().Error("Waitlist limiter failed", zap.String("identifier", identifier), zap.Error(err))
		helpers.RespondWithError(w, 500, apierrors.ErrInternal)
		return
	}

	writeRateLimitHeaders(w, decision)
	if !decision.Success {
		helpers.RespondWithError(w, 429, apierrors.ErrRateLimited)
		return
	}

	entry := models.WaitlistEntry{
		Email:    body.Email,
		FullName: body.FullName,
		Message:  body.Message,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		zap.L().Error("Failed to create waitlist entry", zap.Error(err))
		helpers.RespondWithError(w, 500, apierrors.ErrInternal)
		return
	}

	events.NewWaitlistJoined(s.Publisher, entry.Email, entry.FullName).Trigger()

	action := models.Activity{
		Message: activity.WaitlistJoined,
		Object:  entry,
		Filter: map[string]string{
			"action":      activity.WaitlistJoined,
			"object_type": "waitlist_entry",
		},
	}
	if logErr := s.ActivityLogger.Send(action); logErr != nil {
		zap.L().Error("Failed to log waitlist activity", zap.Error(logErr))
	}

	helpers.RespondWithData(w, 201, entry)
}
