package pipeline

import (
	"context"
	"errors"
	"time"

	"tenant-admin-api/internal/apperrors"
	"tenant-admin-api/internal/customer"

	"gorm.io/gorm"
)

var ErrPipelineNotFound = apperrors.NotFound("Pipeline not found")

type PipelineService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func (s *PipelineService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreatePipeline returns the customer's existing pipeline unchanged, or
// creates a stopped one.
func (s *PipelineService) CreatePipeline(ctx context.Context, customerID int) (*Pipeline, error) {
	var p Pipeline
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := customer.Find(tx, customerID); err != nil {
			return err
		}

		err := tx.Where("customer_id = ?", customerID).First(&p).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		p = Pipeline{CustomerID: customerID, IsRunning: false, LastUpdated: s.now()}
		return tx.Create(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PipelineService) UpdatePipeline(ctx context.Context, customerID int, isRunning bool) (*Pipeline, error) {
	db := s.DB.WithContext(ctx)
	p, err := Find(db, customerID)
	if err != nil {
		return nil, err
	}

	p.IsRunning = isRunning
	p.LastUpdated = s.now()
	if err := db.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PipelineService) GetPipeline(ctx context.Context, customerID int) (*Pipeline, error) {
	return Find(s.DB.WithContext(ctx), customerID)
}

// Find loads the pipeline row of a customer.
func Find(db *gorm.DB, customerID int) (*Pipeline, error) {
	var p Pipeline
	if err := db.Where("customer_id = ?", customerID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPipelineNotFound
		}
		return nil, err
	}
	return &p, nil
}
