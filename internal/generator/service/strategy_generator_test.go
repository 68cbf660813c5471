package service

import (
	"context"
	"errors"
	"testing"

	"golang-monetization-engine/internal/entity"
	"golang-monetization-engine/internal/generator/dto"
	"golang-monetization-engine/pkg/common"
	"golang-monetization-engine/pkg/logger"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKnowledgeRepo struct {
	saved      []string
	categories []string
	err        error
}

func (r *fakeKnowledgeRepo) Save(ctx context.Context, serialized, category string) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, serialized)
	r.categories = append(r.categories, category)
	return nil
}

func (r *fakeKnowledgeRepo) FindByCategory(ctx context.Context, category string, limit int) ([]entity.KnowledgeEntry, error) {
	return nil, nil
}

type fakeAIRepo struct {
	narrative *dto.NarrativeResult
	err       error
	calls     int
}

func (r *fakeAIRepo) EnrichStrategy(ctx context.Context, strategy *entity.MonetizationStrategy, pattern dto.InefficiencyPattern) (*dto.NarrativeResult, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.narrative, nil
}

func newTestGenerator(t *testing.T, knowledgeRepo *fakeKnowledgeRepo, aiRepo *fakeAIRepo) StrategyGenerator {
	t.Helper()
	log := logger.NewNop()
	cleaner := NewDataCleaner(log)
	processor := NewDataProcessor(cleaner, log)
	analyzer := NewMarketAnalyzer(cleaner, nil, log, 0)
	if aiRepo != nil {
		return NewStrategyGenerator(processor, analyzer, knowledgeRepo, aiRepo, log, 0.3)
	}
	return NewStrategyGenerator(processor, analyzer, knowledgeRepo, nil, log, 0.3)
}

func TestGenerateStrategiesDetectsInefficiencies(t *testing.T) {
	generator := newTestGenerator(t, &fakeKnowledgeRepo{}, nil)

	businessData := map[string]interface{}{
		"revenue":      1000,
		"cost":         900, // margin 0.1, well below market 0.4
		"churn_rate":   0.30,
		"avg_price":    8.0,
		"revenue_prev": 990, // growth ~0.01, below market 0.05
	}
	marketTrends := map[string]interface{}{
		"market_margin":     0.4,
		"market_churn_rate": 0.10,
		"market_avg_price":  10.0,
		"market_growth":     0.05,
	}

	strategies, err := generator.GenerateStrategies(context.Background(), businessData, marketTrends)
	require.NoError(t, err)

	names := make([]string, 0, len(strategies))
	for _, s := range strategies {
		names = append(names, s.Name)
	}
	// Rule order is fixed, so strategy order is deterministic.
	assert.Equal(t, []string{"price-realignment", "retention-recovery", "margin-restoration", "growth-acceleration"}, names)

	for _, s := range strategies {
		assert.GreaterOrEqual(t, s.ConfidenceScore, 0.0)
		assert.LessOrEqual(t, s.ConfidenceScore, 1.0)
		assert.NotEmpty(t, s.Description)
		assert.NotEmpty(t, s.Recommendations)
		assert.Contains(t, s.Metrics, "business_value")
		assert.Contains(t, s.Metrics, "market_value")
		assert.Contains(t, s.Metrics, "gap")
		assert.Contains(t, s.Metrics, "severity")
		assert.NotEmpty(t, s.SourcePattern)
	}
}

func TestGenerateStrategiesNoInefficiencies(t *testing.T) {
	generator := newTestGenerator(t, &fakeKnowledgeRepo{}, nil)

	// Business performing at or above every benchmark.
	strategies, err := generator.GenerateStrategies(context.Background(),
		map[string]interface{}{
			"revenue":    1000,
			"cost":       400,
			"avg_price":  12.0,
			"churn_rate": 0.05,
		},
		map[string]interface{}{
			"market_margin":     0.4,
			"market_churn_rate": 0.10,
			"market_avg_price":  10.0,
		},
	)
	require.NoError(t, err)
	assert.NotNil(t, strategies)
	assert.Empty(t, strategies)
}

func TestGenerateStrategiesPropagatesProcessingError(t *testing.T) {
	generator := newTestGenerator(t, &fakeKnowledgeRepo{}, nil)

	strategies, err := generator.GenerateStrategies(context.Background(), nil, map[string]interface{}{"market_growth": 0.05})
	assert.ErrorIs(t, err, ErrNoInputData)
	assert.Nil(t, strategies)
}

func TestGenerateStrategiesAIEnrichment(t *testing.T) {
	aiRepo := &fakeAIRepo{narrative: &dto.NarrativeResult{
		Description:     "Tailored narrative",
		Recommendations: []string{"Do the one thing"},
	}}
	generator := newTestGenerator(t, &fakeKnowledgeRepo{}, aiRepo)

	strategies, err := generator.GenerateStrategies(context.Background(),
		map[string]interface{}{"avg_price": 8.0},
		map[string]interface{}{"market_avg_price": 10.0},
	)
	require.NoError(t, err)
	require.Len(t, strategies, 1)
	assert.Equal(t, 1, aiRepo.calls)
	assert.Equal(t, "Tailored narrative", strategies[0].Description)
	assert.Equal(t, []string{"Do the one thing"}, []string(strategies[0].Recommendations))
}

func TestGenerateStrategiesAIFailureIsBestEffort(t *testing.T) {
	aiRepo := &fakeAIRepo{err: errors.New("quota exceeded")}
	generator := newTestGenerator(t, &fakeKnowledgeRepo{}, aiRepo)

	strategies, err := generator.GenerateStrategies(context.Background(),
		map[string]interface{}{"avg_price": 8.0},
		map[string]interface{}{"market_avg_price": 10.0},
	)
	require.NoError(t, err)
	require.Len(t, strategies, 1)
	// Template text stands when enrichment fails.
	assert.Equal(t, "price-realignment", strategies[0].Name)
	assert.NotEmpty(t, strategies[0].Description)
}

func TestOptimizeStrategyBlendsConfidence(t *testing.T) {
	generator := newTestGenerator(t, &fakeKnowledgeRepo{}, nil)

	strategy := entity.MonetizationStrategy{
		Name:            "price-realignment",
		Metrics:         map[string]float64{"gap": 2.0},
		Recommendations: []string{"keep"},
		ConfidenceScore: 0.5,
		Revision:        2,
	}

	optimized, err := generator.OptimizeStrategy(context.Background(), strategy, map[string]float64{
		"conversion_lift": 0.9,
		"revenue_lift":    0.7,
	})
	require.NoError(t, err)

	// mean feedback 0.8, learning rate 0.3: 0.5 + 0.3*(0.8-0.5) = 0.59
	assert.InDelta(t, 0.59, optimized.ConfidenceScore, 1e-9)
	assert.Equal(t, 3, optimized.Revision)
	assert.Equal(t, 0.9, optimized.Metrics["feedback_conversion_lift"])
	assert.Equal(t, 0.7, optimized.Metrics["feedback_revenue_lift"])
	assert.Equal(t, 2.0, optimized.Metrics["gap"])

	// Input is untouched.
	assert.Equal(t, 0.5, strategy.ConfidenceScore)
	assert.Equal(t, 2, strategy.Revision)
	assert.NotContains(t, strategy.Metrics, "feedback_conversion_lift")
}

func TestOptimizeStrategyDemotesRejectedRecommendations(t *testing.T) {
	generator := newTestGenerator(t, &fakeKnowledgeRepo{}, nil)

	strategy := entity.MonetizationStrategy{
		Name:    "price-realignment",
		Metrics: map[string]float64{"gap": 1.0},
		Recommendations: []string{
			"Raise prices on the entry tier",
			"Add a premium tier",
			"Introduce annual billing",
		},
		ConfidenceScore: 0.5,
	}

	optimized, err := generator.OptimizeStrategy(context.Background(), strategy, map[string]float64{
		"raise_prices":   0.1,
		"annual_billing": 0.9,
	})
	require.NoError(t, err)

	// The low-scoring "raise_prices" entry demotes its matching
	// recommendation; the rest keep their relative order.
	assert.Equal(t, pq.StringArray{
		"Add a premium tier",
		"Introduce annual billing",
		"Raise prices on the entry tier",
	}, optimized.Recommendations)

	// Input order is untouched.
	assert.Equal(t, "Raise prices on the entry tier", strategy.Recommendations[0])
}

func TestOptimizeStrategyEmptyFeedback(t *testing.T) {
	generator := newTestGenerator(t, &fakeKnowledgeRepo{}, nil)

	strategy := entity.MonetizationStrategy{
		Name:            "retention-recovery",
		Metrics:         map[string]float64{"severity": 0.4},
		ConfidenceScore: 0.6,
		Revision:        1,
	}

	optimized, err := generator.OptimizeStrategy(context.Background(), strategy, nil)
	require.NoError(t, err)

	assert.Equal(t, strategy.ConfidenceScore, optimized.ConfidenceScore)
	assert.Equal(t, strategy.Revision, optimized.Revision)
	assert.Equal(t, strategy.Metrics, optimized.Metrics)
}

func TestOptimizeStrategyClampsConfidence(t *testing.T) {
	generator := newTestGenerator(t, &fakeKnowledgeRepo{}, nil)

	strategy := entity.MonetizationStrategy{ConfidenceScore: 0.99}
	optimized, err := generator.OptimizeStrategy(context.Background(), strategy, map[string]float64{"score": 5.0})
	require.NoError(t, err)
	assert.LessOrEqual(t, optimized.ConfidenceScore, 1.0)
}

func TestSaveStrategyUsesFixedCategory(t *testing.T) {
	knowledgeRepo := &fakeKnowledgeRepo{}
	generator := newTestGenerator(t, knowledgeRepo, nil)

	strategy := &entity.MonetizationStrategy{
		Name:            "margin-restoration",
		ConfidenceScore: 0.72,
		Metrics:         map[string]float64{"gap": 0.3},
	}

	err := generator.SaveStrategy(context.Background(), strategy)
	require.NoError(t, err)

	require.Len(t, knowledgeRepo.saved, 1)
	assert.Equal(t, strategy.String(), knowledgeRepo.saved[0])
	assert.Equal(t, common.KnowledgeCategoryStrategies, knowledgeRepo.categories[0])
}

func TestSaveStrategyPropagatesRepositoryError(t *testing.T) {
	wantErr := errors.New("db down")
	generator := newTestGenerator(t, &fakeKnowledgeRepo{err: wantErr}, nil)

	err := generator.SaveStrategy(context.Background(), &entity.MonetizationStrategy{Name: "x"})
	assert.ErrorIs(t, err, wantErr)
}
