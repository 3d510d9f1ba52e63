package helpers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type dataEnvelope struct {
	Data any `json:"data"`
}

type errorEnvelope struct {
	Message string `json:"message"`
}

// RespondWithData writes a {data: ...} JSON envelope.
func RespondWithData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dataEnvelope{Data: data}); err != nil {
		zap.L().Error("Failed to encode response", zap.Error(err))
	}
}

// RespondWithError writes a {message: ...} JSON envelope.
func RespondWithError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorEnvelope{Message: message}); err != nil {
		zap.L().Error("Failed to encode error response", zap.Error(err))
	}
}
