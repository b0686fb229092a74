package health

import "context"

type HealthServiceAPI interface {
	GetSystemHealth(ctx context.Context) ([]SystemHealth, error)
}

var _ HealthServiceAPI = (*HealthService)(nil)
