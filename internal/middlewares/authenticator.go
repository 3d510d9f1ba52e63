package middlewares

import (
	"context"
	"net/http"
	"strings"

	"casaflow/internal/configuration"
	apierrors "casaflow/internal/errors"
	"casaflow/internal/helpers"
	"casaflow/internal/models"
)

func Authenticate(jwtSecret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path, r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			accessToken := r.Header.Get("Authorization")
			userClaims, err := helpers.ParseAccessToken(jwtSecret, accessToken)
			if err != nil {
				helpers.RespondWithError(w, 401, apierrors.ErrUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), models.UserClaimKey{}, userClaims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

func isPublic(path, method string) bool {
	for _, rule := range configuration.PublicRoutes {
		if rule.Method != "*" && rule.Method != method {
			continue
		}
		if path == rule.Path || strings.HasPrefix(path, rule.Path+"/") {
			return true
		}
	}
	return false
}
