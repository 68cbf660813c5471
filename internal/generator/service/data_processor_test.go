package service

import (
	"context"
	"errors"
	"testing"

	"golang-monetization-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCleaner counts Clean calls and remembers the input it received.
type recordingCleaner struct {
	calls    int
	lastData map[string]interface{}
	result   map[string]interface{}
	err      error
}

func (c *recordingCleaner) Clean(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error) {
	c.calls++
	c.lastData = data
	if c.err != nil {
		return nil, c.err
	}
	return c.result, nil
}

func TestDataProcessorDerivesMetrics(t *testing.T) {
	processor := NewDataProcessor(NewDataCleaner(logger.NewNop()), logger.NewNop())

	processed, err := processor.Process(context.Background(), map[string]interface{}{
		"revenue":      "1000",
		"cost":         600,
		"customers":    50,
		"churn_rate":   0.1,
		"revenue_prev": 800,
	})
	require.NoError(t, err)

	assert.InDelta(t, 400.0, processed["profit"].(float64), 1e-9)
	assert.InDelta(t, 0.4, processed["margin"].(float64), 1e-9)
	assert.InDelta(t, 20.0, processed["revenue_per_customer"].(float64), 1e-9)
	assert.InDelta(t, 900.0, processed["churn_adjusted_revenue"].(float64), 1e-9)
	assert.InDelta(t, 0.25, processed["revenue_growth"].(float64), 1e-9)
}

func TestDataProcessorSkipsDerivationsWithoutInputs(t *testing.T) {
	processor := NewDataProcessor(NewDataCleaner(logger.NewNop()), logger.NewNop())

	processed, err := processor.Process(context.Background(), map[string]interface{}{
		"revenue": 1000,
		"segment": "smb",
	})
	require.NoError(t, err)

	assert.Equal(t, float64(1000), processed["revenue"])
	assert.Equal(t, "smb", processed["segment"])
	assert.NotContains(t, processed, "profit")
	assert.NotContains(t, processed, "margin")
	assert.NotContains(t, processed, "revenue_growth")
}

func TestDataProcessorCallsCleanerOnceWithOriginalInput(t *testing.T) {
	cleaner := &recordingCleaner{result: map[string]interface{}{"revenue": float64(100)}}
	processor := NewDataProcessor(cleaner, logger.NewNop())

	input := map[string]interface{}{"Revenue": 100}
	_, err := processor.Process(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 1, cleaner.calls)
	assert.Equal(t, input, cleaner.lastData)
}

func TestDataProcessorPropagatesCleanerError(t *testing.T) {
	wantErr := errors.New("cleanup exploded")
	cleaner := &recordingCleaner{err: wantErr}
	processor := NewDataProcessor(cleaner, logger.NewNop())

	processed, err := processor.Process(context.Background(), map[string]interface{}{"revenue": 1})
	assert.Nil(t, processed)
	assert.ErrorIs(t, err, wantErr)
}

func TestDataProcessorNoUsableMetrics(t *testing.T) {
	processor := NewDataProcessor(NewDataCleaner(logger.NewNop()), logger.NewNop())

	processed, err := processor.Process(context.Background(), map[string]interface{}{
		"segment": "enterprise",
		"region":  "emea",
	})
	assert.ErrorIs(t, err, ErrNoUsableMetrics)
	assert.Nil(t, processed)
}
