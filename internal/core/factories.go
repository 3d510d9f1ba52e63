package core

import (
	"casaflow/internal/activity"
	c "casaflow/internal/cache"
	"casaflow/internal/models"

	"go.uber.org/zap"
)

// NewCache connects the shared cache. A nil cache disables the per-minute
// request throttle, which is acceptable for single-instance development.
func NewCache(config models.CacheConfiguration) c.ICache {
	cache, err := c.New(config)
	if err != nil {
		zap.L().Fatal("Failed to connect to cache", zap.Error(err))
	}
	return cache
}

func NewActivityLogger(config models.ActivityConfiguration) activity.IActivityLogger {
	switch config.Type {
	case "filesystem":
		return activity.NewFilesystemClient(config)
	default:
		zap.L().Fatal("Unknown activity logger type", zap.String("type", config.Type))
		return nil
	}
}
