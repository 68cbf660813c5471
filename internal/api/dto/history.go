package dto

import (
	"database/sql"
	"time"
)

// HistoryResponse is the DTO for API responses containing a generation run.
type HistoryResponse struct {
	ID            uint           `json:"id"`
	JobID         uint           `json:"job_id"`
	ScheduleID    uint           `json:"schedule_id"`
	Status        string         `json:"status"`
	StrategyCount int            `json:"strategy_count"`
	Output        sql.NullString `json:"output" swaggertype:"string"`
	ErrorMessage  sql.NullString `json:"error_message" swaggertype:"string"`
	StartedAt     time.Time      `json:"started_at"`
	CompletedAt   sql.NullTime   `json:"completed_at" swaggertype:"string" format:"date-time"`
}
