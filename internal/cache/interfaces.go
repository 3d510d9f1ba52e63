package cache

// ICache is the shared request-throttle cache behind the HTTP middleware.
type ICache interface {
	// GetRateLimit increments the per-minute request counter for the
	// identifier and returns the retry-after seconds when the counter
	// exceeds requestsPerMinute, or 0 when the request is admitted.
	GetRateLimit(identifier string, requestsPerMinute int) (int, error)

	Close() error
}
