package health

import (
	"context"
	"fmt"
)

// MakeIsHealthy returns a health check reporting an error
// when the backend cannot be reached.
func MakeIsHealthy(backend Pinger, logger Logger) func(ctx context.Context) error {
	return func(ctx context.Context) (err error) {
		err = isHealthy(ctx, backend)
		if err != nil {
			logger.Warn("unhealthy: " + err.Error())
		}
		return err
	}
}

func isHealthy(ctx context.Context, backend Pinger) (err error) {
	err = backend.Ping(ctx)
	if err != nil {
		return fmt.Errorf("pinging backend: %w", err)
	}
	return nil
}
