package health

import "time"

const (
	StatusHealthy = "healthy"
	StatusWarning = "warning"
	StatusError   = "error"

	simulatedErrorMessage = "Simulated error message"
)

var statuses = []string{StatusHealthy, StatusWarning, StatusError}

// SystemHealth is the simulated status snapshot of one customer.
type SystemHealth struct {
	CustomerID       int       `json:"customer_id"`
	CustomerName     string    `json:"customer_name"`
	Status           string    `json:"status"`
	LastSyncTime     time.Time `json:"last_sync_time"`
	LastErrorMessage *string   `json:"last_error_message"`
	PipelineRunning  bool      `json:"pipeline_running"`
}
