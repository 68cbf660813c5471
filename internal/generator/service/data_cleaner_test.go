package service

import (
	"context"
	"testing"

	"golang-monetization-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataCleanerNormalizesKeysAndValues(t *testing.T) {
	cleaner := NewDataCleaner(logger.NewNop())

	input := map[string]interface{}{
		"  Revenue ":  "1,200.50",
		"COST":        800,
		"customers":   int64(40),
		"active":      true,
		"segment":     " enterprise ",
		"empty":       "",
		"missing":     nil,
		"growth_rate": float32(0.25),
	}

	cleaned, err := cleaner.Clean(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 1200.50, cleaned["revenue"])
	assert.Equal(t, float64(800), cleaned["cost"])
	assert.Equal(t, float64(40), cleaned["customers"])
	assert.Equal(t, true, cleaned["active"])
	assert.Equal(t, "enterprise", cleaned["segment"])
	assert.InDelta(t, 0.25, cleaned["growth_rate"].(float64), 1e-6)

	_, hasEmpty := cleaned["empty"]
	assert.False(t, hasEmpty)
	_, hasMissing := cleaned["missing"]
	assert.False(t, hasMissing)
}

func TestDataCleanerDoesNotMutateInput(t *testing.T) {
	cleaner := NewDataCleaner(logger.NewNop())

	input := map[string]interface{}{
		" Revenue ": "1000",
		"drop":      nil,
	}

	_, err := cleaner.Clean(context.Background(), input)
	require.NoError(t, err)

	assert.Len(t, input, 2)
	assert.Equal(t, "1000", input[" Revenue "])
	assert.Contains(t, input, "drop")
}

func TestDataCleanerNilInput(t *testing.T) {
	cleaner := NewDataCleaner(logger.NewNop())

	cleaned, err := cleaner.Clean(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoInputData)
	assert.Nil(t, cleaned)
}

func TestDataCleanerEmptyInput(t *testing.T) {
	cleaner := NewDataCleaner(logger.NewNop())

	cleaned, err := cleaner.Clean(context.Background(), map[string]interface{}{})
	require.NoError(t, err)
	assert.NotNil(t, cleaned)
	assert.Empty(t, cleaned)
}
