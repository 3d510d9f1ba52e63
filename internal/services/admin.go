package services

import (
	"net/http"
	"strconv"

	"casaflow/internal/activity"
	apierrors "casaflow/internal/errors"
	"casaflow/internal/helpers"
	"casaflow/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Filters the activity index accepts from the dashboard. Anything else in the
// query string is dropped rather than forwarded to the index.
var activityFilterKeys = []string{
	"action",
	"object_type",
	"property_id",
	"tenant_id",
	"lease_id",
	"request_id",
	"user_id",
}

type AdminService struct {
	ActivityLogger activity.IActivityLogger
}

func (s AdminService) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/activity", s.SearchActivity)
	r.Get("/activity/series", s.ActivitySeries)
	return r
}

func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	claims, _ := r.Context().Value(models.UserClaimKey{}).(models.UserClaims)
	if claims.Role != models.RoleAdmin {
		helpers.RespondWithError(w, 403, apierrors.ErrForbidden)
		return false
	}
	return true
}

func activityCriteria(r *http.Request) map[string][]string {
	criteria := map[string][]string{}
	query := r.URL.Query()
	for _, key := range activityFilterKeys {
		if values, ok := query[key]; ok {
			criteria[key] = values
		}
	}
	return criteria
}

func (s AdminService) SearchActivity(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	results, err := s.ActivityLogger.Search(activityCriteria(r))
	if err != nil {
		zap.L().Error("Activity search failed", zap.Error(err))
		helpers.RespondWithError(w, 500, apierrors.ErrInternal)
		return
	}

	helpers.RespondWithData(w, 200, results)
}

func (s AdminService) ActivitySeries(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 365 {
			helpers.RespondWithError(w, 400, apierrors.ErrInvalidBody)
			return
		}
		days = parsed
	}

	points, err := s.ActivityLogger.CountByDay(activityCriteria(r), days)
	if err != nil {
		zap.L().Error("Activity series failed", zap.Error(err))
		helpers.RespondWithError(w, 500, apierrors.ErrInternal)
		return
	}

	helpers.RespondWithData(w, 200, points)
}
