package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"golang-monetization-engine/internal/entity"
	"golang-monetization-engine/internal/generator/dto"
	"golang-monetization-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// capturingHistoryRepo remembers the last history row handed to Update.
type capturingHistoryRepo struct {
	updated *entity.GenerationHistory
}

func (r *capturingHistoryRepo) FindByID(ctx context.Context, id uint) (*entity.GenerationHistory, error) {
	return nil, errors.New("not implemented")
}

func (r *capturingHistoryRepo) Update(ctx context.Context, history *entity.GenerationHistory) error {
	r.updated = history
	return nil
}

func mustPatternJSON(t *testing.T, kind string) datatypes.JSON {
	t.Helper()
	raw, err := json.Marshal(dto.InefficiencyPattern{Kind: kind, Severity: 0.4})
	require.NoError(t, err)
	return datatypes.JSON(raw)
}

func TestRecordOutcomeSummarizesStrategies(t *testing.T) {
	historyRepo := &capturingHistoryRepo{}
	svc := &generatorService{log: logger.NewNop(), historyRepo: historyRepo}

	job := &entity.GenerationJob{ID: 7}
	history := &entity.GenerationHistory{Status: entity.StatusRunning}

	strategies := []entity.MonetizationStrategy{
		{Name: "price-realignment", SourcePattern: mustPatternJSON(t, "pricing_below_market")},
		{Name: "retention-recovery", SourcePattern: mustPatternJSON(t, "churn_above_market")},
	}

	svc.recordOutcome(context.Background(), job, history, strategies, nil)

	require.NotNil(t, historyRepo.updated)
	assert.Equal(t, entity.StatusCompleted, historyRepo.updated.Status)
	assert.Equal(t, 2, historyRepo.updated.StrategyCount)
	assert.True(t, historyRepo.updated.CompletedAt.Valid)

	require.True(t, historyRepo.updated.Output.Valid)
	var summary dto.GenerationSummaryResult
	require.NoError(t, json.Unmarshal([]byte(historyRepo.updated.Output.String), &summary))
	assert.Equal(t, uint(7), summary.JobID)
	assert.Equal(t, []string{"price-realignment", "retention-recovery"}, summary.StrategyNames)
	assert.Equal(t, []string{"pricing_below_market", "churn_above_market"}, summary.PatternKinds)
}

func TestRecordOutcomeFailure(t *testing.T) {
	historyRepo := &capturingHistoryRepo{}
	svc := &generatorService{log: logger.NewNop(), historyRepo: historyRepo}

	history := &entity.GenerationHistory{Status: entity.StatusRunning}
	svc.recordOutcome(context.Background(), &entity.GenerationJob{}, history, nil, errors.New("pipeline exploded"))

	require.NotNil(t, historyRepo.updated)
	assert.Equal(t, entity.StatusFailed, historyRepo.updated.Status)
	require.True(t, historyRepo.updated.ErrorMessage.Valid)
	assert.Equal(t, "pipeline exploded", historyRepo.updated.ErrorMessage.String)
	assert.False(t, historyRepo.updated.Output.Valid)
}
