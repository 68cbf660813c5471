package dto

import (
	"database/sql"
	"encoding/json"
	"time"
)

// ScheduleDTO represents a generation schedule in API requests.
type ScheduleDTO struct {
	CronExpression string `json:"cron_expression"`
	IsActive       bool   `json:"is_active"`
}

// CreateJobRequest is the DTO for creating a new generation job.
type CreateJobRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	BusinessData json.RawMessage `json:"business_data" swaggertype:"object"`
	MarketTrends json.RawMessage `json:"market_trends" swaggertype:"object"`
	FeedURLs     []string        `json:"feed_urls"`
	Notify       bool            `json:"notify"`
	Timeout      int             `json:"timeout"` // in seconds
	Schedules    []ScheduleDTO   `json:"schedules"`
}

// UpdateJobRequest is the DTO for updating an existing generation job.
type UpdateJobRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	BusinessData json.RawMessage `json:"business_data" swaggertype:"object"`
	MarketTrends json.RawMessage `json:"market_trends" swaggertype:"object"`
	FeedURLs     []string        `json:"feed_urls"`
	Notify       bool            `json:"notify"`
	Timeout      int             `json:"timeout"` // in seconds
	Schedules    []ScheduleDTO   `json:"schedules"`
}

// ScheduleResponseDTO represents a generation schedule in API responses.
type ScheduleResponseDTO struct {
	ID             uint         `json:"id"`
	CronExpression string       `json:"cron_expression"`
	IsActive       bool         `json:"is_active"`
	NextExecution  sql.NullTime `json:"next_execution" swaggertype:"string" format:"date-time"`
	LastExecution  sql.NullTime `json:"last_execution" swaggertype:"string" format:"date-time"`
}

// JobResponse is the DTO for API responses containing generation job details.
type JobResponse struct {
	ID           uint                  `json:"id"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	BusinessData json.RawMessage       `json:"business_data" swaggertype:"object"`
	MarketTrends json.RawMessage       `json:"market_trends" swaggertype:"object"`
	FeedURLs     []string              `json:"feed_urls"`
	Notify       bool                  `json:"notify"`
	Timeout      int                   `json:"timeout"`
	Schedules    []ScheduleResponseDTO `json:"schedules"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}
