package pipeline

import "context"

type PipelineServiceAPI interface {
	CreatePipeline(ctx context.Context, customerID int) (*Pipeline, error)
	UpdatePipeline(ctx context.Context, customerID int, isRunning bool) (*Pipeline, error)
	GetPipeline(ctx context.Context, customerID int) (*Pipeline, error)
}

var _ PipelineServiceAPI = (*PipelineService)(nil)
