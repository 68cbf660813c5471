package service

import (
	"context"

	"golang-monetization-engine/pkg/logger"
)

// DataProcessor processes raw business data for analysis: cleaning,
// transformation and metric enrichment.
type DataProcessor interface {
	Process(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error)
}

type dataProcessor struct {
	cleaner DataCleaner
	logger  *logger.Logger
}

// NewDataProcessor creates a new DataProcessor delegating cleaning to the
// given cleaner.
func NewDataProcessor(cleaner DataCleaner, log *logger.Logger) DataProcessor {
	return &dataProcessor{
		cleaner: cleaner,
		logger:  log,
	}
}

// Process cleans the raw data and transforms it into an analysis-ready map.
// Failures are logged and returned to the caller unchanged.
func (p *dataProcessor) Process(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error) {
	cleaned, err := p.cleaner.Clean(ctx, data)
	if err != nil {
		p.logger.Error("Data processing failed", logger.ErrorField(err))
		return nil, err
	}

	processed, err := p.transform(cleaned)
	if err != nil {
		p.logger.Error("Data processing failed", logger.ErrorField(err))
		return nil, err
	}

	return processed, nil
}

// transform derives analysis-ready metrics from cleaned data. Non-numeric
// values are carried through untouched; derived ratios are only computed when
// their inputs exist.
func (p *dataProcessor) transform(cleaned map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(cleaned))
	numericCount := 0
	for k, v := range cleaned {
		out[k] = v
		if _, ok := v.(float64); ok {
			numericCount++
		}
	}
	if numericCount == 0 {
		return nil, ErrNoUsableMetrics
	}

	revenue, hasRevenue := numeric(out, "revenue")
	cost, hasCost := numeric(out, "cost")
	customers, hasCustomers := numeric(out, "customers")
	churn, hasChurn := numeric(out, "churn_rate")
	prevRevenue, hasPrevRevenue := numeric(out, "revenue_prev")

	if hasRevenue && hasCost && revenue != 0 {
		out["profit"] = revenue - cost
		out["margin"] = (revenue - cost) / revenue
	}
	if hasRevenue && hasCustomers && customers != 0 {
		out["revenue_per_customer"] = revenue / customers
	}
	if hasRevenue && hasChurn {
		out["churn_adjusted_revenue"] = revenue * (1 - churn)
	}
	if hasRevenue && hasPrevRevenue && prevRevenue != 0 {
		out["revenue_growth"] = (revenue - prevRevenue) / prevRevenue
	}

	return out, nil
}

// numeric looks up a float64 value in an analysis map.
func numeric(m map[string]interface{}, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}
