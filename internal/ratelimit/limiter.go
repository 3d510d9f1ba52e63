package ratelimit

import (
	"context"
	"time"
)

// Decision is the transient outcome of one CheckAndRecord call. It is
// advisory: the caller must reject the underlying action (HTTP 429) when
// Success is false.
type Decision struct {
	Success   bool
	Limit     int
	Remaining int
	Reset     time.Time
}

// AttemptStore is the append-only attempt log behind the limiter.
type AttemptStore interface {
	CountSince(ctx context.Context, identifier string, since time.Time) (int64, error)
	Record(ctx context.Context, identifier string, at time.Time) error
}

// Limiter admits an identifier while its accepted attempts within the
// trailing window stay below the ceiling, and records each admitted attempt
// back into the log. The count and the insert are two separate store calls,
// so concurrent callers for one identifier can transiently over-admit by at
// most the number of concurrent callers minus one.
//
// Storage failures fail closed: the returned Decision denies and the error
// is propagated, so an outage never silently admits everyone.
type Limiter struct {
	store   AttemptStore
	ceiling int
	window  time.Duration
	now     func() time.Time
}

func NewLimiter(store AttemptStore, ceiling int, window time.Duration) *Limiter {
	return &Limiter{
		store:   store,
		ceiling: ceiling,
		window:  window,
		now:     time.Now,
	}
}

func (l *Limiter) deny(now time.Time) Decision {
	return Decision{
		Success:   false,
		Limit:     l.ceiling,
		Remaining: 0,
		Reset:     now.Add(l.window),
	}
}

// CheckAndRecord derives the identifier's state fresh from the attempt log
// and inserts a new attempt when admitted. Remaining reflects the attempts
// left after this call.
func (l *Limiter) CheckAndRecord(ctx context.Context, identifier string) (Decision, error) {
	now := l.now()
	windowStart := now.Add(-l.window)

	count, err := l.store.CountSince(ctx, identifier, windowStart)
	if err != nil {
		return l.deny(now), err
	}

	remaining := l.ceiling - int(count)
	if remaining <= 0 {
		return l.deny(now), nil
	}

	if err := l.store.Record(ctx, identifier, now); err != nil {
		return l.deny(now), err
	}

	return Decision{
		Success:   true,
		Limit:     l.ceiling,
		Remaining: remaining - 1,
		Reset:     now.Add(l.window),
	}, nil
}
