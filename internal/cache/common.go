package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"casaflow/internal/configuration"
	"casaflow/internal/models"

	"github.com/redis/rueidis"
)

type RueidisCache struct {
	client rueidis.Client
}

func newRueidisCache(
	hosts []string,
	password string,
	tlsEnabled bool,
	tlsServerName,
	errorContext string,
) (*RueidisCache, error) {
	clientOption := rueidis.ClientOption{
		InitAddress: hosts,
		Password:    password,
	}

	if tlsEnabled {
		clientOption.TLSConfig = &tls.Config{
			ServerName: tlsServerName,
			MinVersion: tls.VersionTLS12,
		}
	}

	client, err := rueidis.NewClient(clientOption)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", errorContext, err)
	}
	return &RueidisCache{client: client}, nil
}

// New builds the configured cache backend. Redis and Valkey share the rueidis
// client.
func New(config models.CacheConfiguration) (ICache, error) {
	switch config.Type {
	case "redis":
		return newRueidisCache(
			config.Redis.Hosts,
			config.Redis.Password,
			config.Redis.TLSEnabled,
			config.Redis.TLSServerName,
			"redis",
		)
	case "valkey":
		return newRueidisCache(
			config.Valkey.Hosts,
			config.Valkey.Password,
			config.Valkey.TLSEnabled,
			config.Valkey.TLSServerName,
			"valkey",
		)
	default:
		return nil, fmt.Errorf("unknown cache type %q", config.Type)
	}
}

func (r *RueidisCache) GetRateLimit(identifier string, requestsPerMinute int) (int, error) {
	ctx := context.Background()

	key := fmt.Sprintf(configuration.CacheAppRateLimitKey, identifier)
	count, err := r.client.Do(ctx, r.client.B().Incr().Key(key).Build()).AsInt64()
	if err != nil {
		return 0, err
	}

	if count == 1 {
		expireErr := r.client.Do(ctx, r.client.B().Expire().Key(key).Seconds(int64(1*time.Minute.Seconds())).Build()).
			Error()
		if expireErr != nil {
			return 0, expireErr
		}
	}

	if int(count) > requestsPerMinute {
		retryAfter, ttlErr := r.client.Do(ctx, r.client.B().Ttl().Key(key).Build()).AsInt64()
		if ttlErr != nil {
			return 0, ttlErr
		}

		return int(retryAfter), nil
	}

	return 0, nil
}

func (r *RueidisCache) Close() error {
	r.client.Close()
	return nil
}
