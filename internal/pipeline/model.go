package pipeline

import "time"

// Pipeline is the run/stop flag of a customer's pipeline.
type Pipeline struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID  int       `gorm:"not null;index" json:"customer_id"`
	IsRunning   bool      `gorm:"not null;default:false" json:"is_running"`
	LastUpdated time.Time `gorm:"not null" json:"last_updated"`
	CreatedAt   time.Time `json:"created_at"`
}

type PipelineUpdate struct {
	IsRunning *bool `json:"is_running" binding:"required"`
}

func (Pipeline) TableName() string {
	return "pipelines"
}
