package handlers

import (
	"errors"
	"net/http"

	apierrors "casaflow/internal/errors"
	"casaflow/internal/helpers"
	"casaflow/internal/middlewares"
	"casaflow/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Adapters from service methods to chi handlers. Services return domain
// values and errors; the adapters deal with URL ids, validated bodies from
// the Validate middleware, claims, and the JSON envelopes.

type ListFunc[T any] func(logger *zap.Logger, claims models.UserClaims) ([]T, error)

type GetFunc[T any] func(logger *zap.Logger, claims models.UserClaims, id uuid.UUID) (T, error)

type CreateFunc[B any, T any] func(logger *zap.Logger, claims models.UserClaims, body B) (T, error)

type UpdateFunc[B any, T any] func(logger *zap.Logger, claims models.UserClaims, id uuid.UUID, body B) (T, error)

type DeleteFunc func(logger *zap.Logger, claims models.UserClaims, id uuid.UUID) error

func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		helpers.RespondWithError(w, apiErr.Status, apiErr.Message)
		return
	}
	logger.Error("Unhandled service error", zap.Error(err))
	helpers.RespondWithError(w, 500, apierrors.ErrInternal)
}

func claimsFromContext(r *http.Request) models.UserClaims {
	claims, _ := r.Context().Value(models.UserClaimKey{}).(models.UserClaims)
	return claims
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		helpers.RespondWithError(w, 400, apierrors.ErrEmptyID)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		helpers.RespondWithError(w, 400, apierrors.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

func ListHandler[T any](fn ListFunc[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := zap.L()
		items, err := fn(logger, claimsFromContext(r))
		if err != nil {
			writeError(w, logger, err)
			return
		}
		helpers.RespondWithData(w, 200, items)
	}
}

func GetHandler[T any](fn GetFunc[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := zap.L()
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		item, err := fn(logger, claimsFromContext(r), id)
		if err != nil {
			writeError(w, logger, err)
			return
		}
		helpers.RespondWithData(w, 200, item)
	}
}

func CreateHandler[B any, T any](fn CreateFunc[B, T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := zap.L()
		body, _ := r.Context().Value(middlewares.BodyKey{}).(B)
		item, err := fn(logger, claimsFromContext(r), body)
		if err != nil {
			writeError(w, logger, err)
			return
		}
		helpers.RespondWithData(w, 201, item)
	}
}

func UpdateHandler[B any, T any](fn UpdateFunc[B, T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := zap.L()
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		body, _ := r.Context().Value(middlewares.BodyKey{}).(B)
		item, err := fn(logger, claimsFromContext(r), id, body)
		if err != nil {
			writeError(w, logger, err)
			return
		}
		helpers.RespondWithData(w, 200, item)
	}
}

func DeleteHandler(fn DeleteFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := zap.L()
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		if err := fn(logger, claimsFromContext(r), id); err != nil {
			writeError(w, logger, err)
			return
		}
		w.WriteHeader(204)
	}
}
