package health

import (
	"context"
	"time"

	"tenant-admin-api/internal/customer"
	"tenant-admin-api/internal/pipeline"
	"tenant-admin-api/internal/util"

	"gorm.io/gorm"
)

// HealthService reports a simulated status per customer. Intn and Now are
// replaceable in tests; Intn(n) must return a value in [0, n).
type HealthService struct {
	DB   *gorm.DB
	Intn func(n int) int
	Now  func() time.Time
}

func (s *HealthService) intn(n int) int {
	if s.Intn != nil {
		return s.Intn(n)
	}
	return util.RandomInt(0, n-1)
}

func (s *HealthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *HealthService) GetSystemHealth(ctx context.Context) ([]SystemHealth, error) {
	db := s.DB.WithContext(ctx)

	var customers []customer.Customer
	if err := db.Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}

	running := map[int]bool{}
	if len(customers) > 0 {
		var pipelines []pipeline.Pipeline
		if err := db.Find(&pipelines).Error; err != nil {
			return nil, err
		}
		for _, p := range pipelines {
			running[p.CustomerID] = p.IsRunning
		}
	}

	now := s.now()
	report := make([]SystemHealth, 0, len(customers))
	for _, c := range customers {
		status := statuses[s.intn(len(statuses))]
		hoursAgo := 1 + s.intn(24)

		entry := SystemHealth{
			CustomerID:      c.ID,
			CustomerName:    c.Name,
			Status:          status,
			LastSyncTime:    now.Add(-time.Duration(hoursAgo) * time.Hour),
			PipelineRunning: running[c.ID],
		}
		if status != StatusHealthy {
			msg := simulatedErrorMessage
			entry.LastErrorMessage = &msg
		}
		report = append(report, entry)
	}
	return report, nil
}
