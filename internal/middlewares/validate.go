package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	apierrors "casaflow/internal/errors"
	"casaflow/internal/helpers"

	"github.com/go-playground/validator/v10"
)

type BodyKey struct{}

var validate = validator.New()

// Validate decodes and validates the JSON body as T, then injects it into
// the request context for the handler adapters.
func Validate[T any](next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		var body T
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			helpers.RespondWithError(w, 400, apierrors.ErrInvalidBody)
			return
		}
		if err := validate.Struct(body); err != nil {
			helpers.RespondWithError(w, 400, apierrors.ErrInvalidBody)
			return
		}

		ctx := context.WithValue(r.Context(), BodyKey{}, body)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}
