package apierrors

// HTTP 400 Bad Request.
const (
	ErrInvalidBody = "INVALID_BODY"
	ErrEmptyID     = "EMPTY_RESOURCE_ID"
	ErrInvalidID   = "INVALID_RESOURCE_ID"
)

// HTTP 401 Unauthorized.
const (
	ErrUnauthorized       = "UNAUTHORIZED"
	ErrInvalidCredentials = "INVALID_CREDENTIALS"
)

// HTTP 403 Forbidden.
const (
	ErrForbidden = "FORBIDDEN"
)

// HTTP 404 Not Found.
const (
	ErrPropertyNotFound    = "PROPERTY_NOT_FOUND"
	ErrTenantNotFound      = "TENANT_NOT_FOUND"
	ErrLeaseNotFound       = "LEASE_NOT_FOUND"
	ErrMaintenanceNotFound = "MAINTENANCE_REQUEST_NOT_FOUND"
)

// HTTP 409 Conflict.
const (
	ErrInvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	ErrUnitOccupied            = "UNIT_OCCUPIED"
)

// HTTP 429 Too Many Requests.
const (
	ErrRateLimited = "RATE_LIMITED"
)

// HTTP 500 Internal Server Error.
const (
	ErrInternal = "INTERNAL_SERVER_ERROR"
)
