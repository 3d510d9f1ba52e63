package apierrors

import "fmt"

// APIError is the single error kind surfaced to API consumers. Status carries
// the HTTP status code, Message the machine-readable error code or the message
// extracted from an upstream response body.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}
