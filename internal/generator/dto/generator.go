package dto

// InefficiencyPattern describes a detected business/market gap, consumed by
// the strategy generator to build a MonetizationStrategy.
type InefficiencyPattern struct {
	Kind          string  `json:"kind"`
	BusinessKey   string  `json:"business_key"`
	MarketKey     string  `json:"market_key"`
	BusinessValue float64 `json:"business_value"`
	MarketValue   float64 `json:"market_value"`
	Gap           float64 `json:"gap"`
	Severity      float64 `json:"severity"`
	Detail        string  `json:"detail"`
}

// StreamDataStrategyGenerate is the payload for a generation task on the
// strategy.generate stream.
type StreamDataStrategyGenerate struct {
	JobID     uint `json:"job_id"`
	HistoryID uint `json:"history_id"`
}

// StreamDataStrategyOptimize is the payload for a feedback task on the
// strategy.optimize stream.
type StreamDataStrategyOptimize struct {
	StrategyID int64              `json:"strategy_id"`
	Feedback   map[string]float64 `json:"feedback"`
}

// GenerationSummaryResult is the per-job output recorded in generation history.
type GenerationSummaryResult struct {
	JobID         uint     `json:"job_id"`
	StrategyCount int      `json:"strategy_count"`
	StrategyNames []string `json:"strategy_names"`
	PatternKinds  []string `json:"pattern_kinds"`
}
