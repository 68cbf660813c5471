package dto

import "time"

// GenerateStrategiesRequest is the DTO for synchronous strategy generation.
type GenerateStrategiesRequest struct {
	BusinessData map[string]interface{} `json:"business_data" swaggertype:"object"`
	MarketTrends map[string]interface{} `json:"market_trends" swaggertype:"object"`
}

// FeedbackRequest carries performance metrics for an existing strategy.
type FeedbackRequest struct {
	Feedback map[string]float64 `json:"feedback"`
}

// StrategyResponse is the DTO for API responses containing a strategy.
type StrategyResponse struct {
	ID              int64              `json:"id"`
	JobID           *uint              `json:"job_id,omitempty"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Metrics         map[string]float64 `json:"metrics"`
	Recommendations []string           `json:"recommendations"`
	ConfidenceScore float64            `json:"confidence_score"`
	Revision        int                `json:"revision"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
