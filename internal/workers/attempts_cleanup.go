package workers

import (
	"context"
	"time"

	"casaflow/internal/ratelimit"

	"go.uber.org/zap"
)

// AttemptsCleanupWorker prunes waitlist attempts that can no longer influence
// a limiter decision. Retention is a multiple of the limiter window so a
// clock skew between instances never deletes rows a peer still counts.
type AttemptsCleanupWorker struct {
	Store             *ratelimit.GormAttemptStore
	Window            time.Duration
	RetentionMultiple int
	RunInterval       time.Duration
}

// Start runs an immediate prune, then repeats on the configured interval
// until the context is cancelled.
func (w *AttemptsCleanupWorker) Start(ctx context.Context) {
	zap.L().Info("Starting attempts cleanup worker",
		zap.Duration("window", w.Window),
		zap.Int("retention_multiple", w.RetentionMultiple),
		zap.Duration("interval", w.RunInterval))

	w.runCleanup(ctx)

	ticker := time.NewTicker(w.RunInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Attempts cleanup worker shutting down")
			return
		case <-ticker.C:
			w.runCleanup(ctx)
		}
	}
}

func (w *AttemptsCleanupWorker) runCleanup(ctx context.Context) {
	startTime := time.Now()
	cutoff := startTime.Add(-w.Window * time.Duration(w.RetentionMultiple))

	deleted, err := w.Store.DeleteBefore(ctx, cutoff)
	if err != nil {
		zap.L().Error("Failed to prune waitlist attempts", zap.Error(err))
		return
	}

	zap.L().Info("Attempts cleanup cycle complete",
		zap.Int64("deleted", deleted),
		zap.Duration("duration", time.Since(startTime)))
}
