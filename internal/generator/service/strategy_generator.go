package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"golang-monetization-engine/internal/entity"
	"golang-monetization-engine/internal/generator/dto"
	"golang-monetization-engine/internal/generator/repository"
	"golang-monetization-engine/pkg/common"
	"golang-monetization-engine/pkg/logger"
	"golang-monetization-engine/pkg/utils"

	"gorm.io/datatypes"
)

// StrategyGenerator generates optimized monetization strategies from business
// data and market trends.
type StrategyGenerator interface {
	GenerateStrategies(ctx context.Context, businessData, marketTrends map[string]interface{}) ([]entity.MonetizationStrategy, error)
	OptimizeStrategy(ctx context.Context, strategy entity.MonetizationStrategy, feedback map[string]float64) (entity.MonetizationStrategy, error)
	SaveStrategy(ctx context.Context, strategy *entity.MonetizationStrategy) error
}

type strategyGenerator struct {
	dataProcessor  DataProcessor
	marketAnalyzer MarketAnalyzer
	knowledgeRepo  repository.KnowledgeRepository
	aiRepo         repository.AIRepository
	logger         *logger.Logger
	learningRate   float64
}

// NewStrategyGenerator creates a new StrategyGenerator. The AI repository may
// be nil, in which case narrative enrichment is skipped.
func NewStrategyGenerator(
	dataProcessor DataProcessor,
	marketAnalyzer MarketAnalyzer,
	knowledgeRepo repository.KnowledgeRepository,
	aiRepo repository.AIRepository,
	log *logger.Logger,
	learningRate float64,
) StrategyGenerator {
	if learningRate <= 0 || learningRate > 1 {
		learningRate = 0.3
	}
	return &strategyGenerator{
		dataProcessor:  dataProcessor,
		marketAnalyzer: marketAnalyzer,
		knowledgeRepo:  knowledgeRepo,
		aiRepo:         aiRepo,
		logger:         log,
		learningRate:   learningRate,
	}
}

// inefficiencyRule compares a business metric against a market benchmark. A
// pattern fires when the relative gap in the bad direction exceeds threshold.
type inefficiencyRule struct {
	kind        string
	businessKey string
	marketKey   string
	// belowIsBad: the business value trailing the benchmark is the inefficiency
	// (pricing, margin, growth). When false the inverse holds (churn, cost).
	belowIsBad bool
	threshold  float64
	detail     string
}

var inefficiencyRules = []inefficiencyRule{
	{
		kind:        "pricing_below_market",
		businessKey: "avg_price",
		marketKey:   "market_avg_price",
		belowIsBad:  true,
		threshold:   0.05,
		detail:      "average selling price trails the market benchmark",
	},
	{
		kind:        "churn_above_market",
		businessKey: "churn_rate",
		marketKey:   "market_churn_rate",
		belowIsBad:  false,
		threshold:   0.10,
		detail:      "customer churn exceeds the market benchmark",
	},
	{
		kind:        "margin_compression",
		businessKey: "margin",
		marketKey:   "market_margin",
		belowIsBad:  true,
		threshold:   0.05,
		detail:      "profit margin trails the market benchmark",
	},
	{
		kind:        "growth_lag",
		businessKey: "revenue_growth",
		marketKey:   "market_growth",
		belowIsBad:  true,
		threshold:   0.02,
		detail:      "revenue growth trails overall market growth",
	},
	{
		kind:        "underutilized_channel",
		businessKey: "conversion_rate",
		marketKey:   "market_conversion_rate",
		belowIsBad:  true,
		threshold:   0.10,
		detail:      "conversion rate trails the market benchmark",
	},
}

// strategyTemplate maps a pattern kind to the strategy built from it.
type strategyTemplate struct {
	name            string
	description     string
	recommendations []string
}

var strategyTemplates = map[string]strategyTemplate{
	"pricing_below_market": {
		name:        "price-realignment",
		description: "Close the pricing gap to the market benchmark through staged price increases on low-elasticity segments.",
		recommendations: []string{
			"Run a price elasticity test on the top revenue segment",
			"Introduce a premium tier priced at the market benchmark",
			"Grandfather existing customers for one billing cycle to limit churn risk",
		},
	},
	"churn_above_market": {
		name:        "retention-recovery",
		description: "Reduce churn toward the market rate with targeted retention offers and an early-warning funnel.",
		recommendations: []string{
			"Identify the cancellation reasons of the last churn cohort",
			"Offer a downgrade path before cancellation",
			"Add usage-drop alerts to trigger proactive outreach",
		},
	},
	"margin_compression": {
		name:        "margin-restoration",
		description: "Restore margin to the market benchmark by cutting cost-to-serve and repricing unprofitable accounts.",
		recommendations: []string{
			"Audit cost-to-serve per customer segment",
			"Reprice or sunset accounts below break-even",
			"Automate the highest-cost manual workflow",
		},
	},
	"growth_lag": {
		name:        "growth-acceleration",
		description: "Close the growth gap to the market by expanding into the highest-performing acquisition channel.",
		recommendations: []string{
			"Double budget on the best cost-per-acquisition channel",
			"Launch a referral incentive for existing customers",
			"Bundle the flagship product with an upsell at checkout",
		},
	},
	"underutilized_channel": {
		name:        "conversion-uplift",
		description: "Lift conversion toward the market benchmark by shortening the funnel and testing the primary offer.",
		recommendations: []string{
			"A/B test the landing page value proposition",
			"Remove one step from the signup flow",
			"Add social proof near the primary call to action",
		},
	},
}

// GenerateStrategies processes business data and market trends, identifies
// inefficiencies and maps each to a strategy. Any failure is logged and
// propagated unchanged; no partial results are returned.
func (g *strategyGenerator) GenerateStrategies(ctx context.Context, businessData, marketTrends map[string]interface{}) ([]entity.MonetizationStrategy, error) {
	processedBusinessData, err := g.dataProcessor.Process(ctx, businessData)
	if err != nil {
		g.logger.Error("Error generating strategies", logger.ErrorField(err))
		return nil, err
	}

	processedMarketData, err := g.marketAnalyzer.Analyze(ctx, marketTrends)
	if err != nil {
		g.logger.Error("Error generating strategies", logger.ErrorField(err))
		return nil, err
	}

	inefficiencies := g.identifyInefficiencies(processedBusinessData, processedMarketData)

	strategies := make([]entity.MonetizationStrategy, 0, len(inefficiencies))
	for _, inefficiency := range inefficiencies {
		strategy, err := g.createStrategy(ctx, inefficiency, processedBusinessData)
		if err != nil {
			g.logger.Error("Error generating strategies", logger.ErrorField(err))
			return nil, err
		}
		strategies = append(strategies, strategy)
	}

	g.logger.Info("Strategies generated",
		logger.IntField("inefficiencies", len(inefficiencies)),
		logger.IntField("strategies", len(strategies)),
	)
	return strategies, nil
}

// identifyInefficiencies runs each rule against the processed business metrics
// and market benchmarks. Patterns are emitted in rule order so the output is
// deterministic.
func (g *strategyGenerator) identifyInefficiencies(processedBusinessData, processedMarketData map[string]interface{}) []dto.InefficiencyPattern {
	var patterns []dto.InefficiencyPattern
	for _, rule := range inefficiencyRules {
		businessValue, ok := numeric(processedBusinessData, rule.businessKey)
		if !ok {
			continue
		}
		marketValue, ok := numeric(processedMarketData, rule.marketKey)
		if !ok {
			continue
		}

		gap := marketValue - businessValue
		if !rule.belowIsBad {
			gap = businessValue - marketValue
		}

		denom := math.Max(math.Abs(marketValue), 1e-9)
		relGap := gap / denom
		if relGap <= rule.threshold {
			continue
		}

		patterns = append(patterns, dto.InefficiencyPattern{
			Kind:          rule.kind,
			BusinessKey:   rule.businessKey,
			MarketKey:     rule.marketKey,
			BusinessValue: businessValue,
			MarketValue:   marketValue,
			Gap:           gap,
			Severity:      utils.Clamp(relGap, 0, 1),
			Detail:        rule.detail,
		})
	}
	return patterns
}

// createStrategy builds one MonetizationStrategy from an identified pattern.
// Confidence blends pattern severity with how complete the business metrics
// are, clamped to [0,1].
func (g *strategyGenerator) createStrategy(ctx context.Context, pattern dto.InefficiencyPattern, processedBusinessData map[string]interface{}) (entity.MonetizationStrategy, error) {
	template, ok := strategyTemplates[pattern.Kind]
	if !ok {
		return entity.MonetizationStrategy{}, fmt.Errorf("no strategy template for inefficiency kind: %s", pattern.Kind)
	}

	completeness := metricCompleteness(processedBusinessData)
	confidence := utils.Clamp(0.6*pattern.Severity+0.4*completeness, 0, 1)

	patternJSON, err := json.Marshal(pattern)
	if err != nil {
		return entity.MonetizationStrategy{}, fmt.Errorf("failed to marshal inefficiency pattern: %w", err)
	}

	strategy := entity.MonetizationStrategy{
		Name:        template.name,
		Description: template.description,
		Metrics: map[string]float64{
			"business_value": pattern.BusinessValue,
			"market_value":   pattern.MarketValue,
			"gap":            pattern.Gap,
			"severity":       pattern.Severity,
		},
		Recommendations: append([]string(nil), template.recommendations...),
		ConfidenceScore: confidence,
		SourcePattern:   datatypes.JSON(patternJSON),
	}

	// Narrative enrichment is best-effort: the rule-generated text stands when
	// the AI provider is unavailable.
	if g.aiRepo != nil {
		narrative, err := g.aiRepo.EnrichStrategy(ctx, &strategy, pattern)
		if err != nil {
			g.logger.Warn("Strategy narrative enrichment failed", logger.ErrorField(err), logger.StringField("strategy", strategy.Name))
		} else if narrative != nil {
			if narrative.Description != "" {
				strategy.Description = narrative.Description
			}
			if len(narrative.Recommendations) > 0 {
				strategy.Recommendations = narrative.Recommendations
			}
		}
	}

	return strategy, nil
}

// Recommendations whose feedback score falls below this are treated as
// rejected and demoted to the end of the list.
const feedbackDemotionThreshold = 0.5

// OptimizeStrategy returns a revised copy of the strategy: confidence moves
// toward the mean feedback score by the learning rate, feedback metrics are
// merged under a feedback_ prefix, and recommendations rejected by feedback
// are demoted to the end. The input strategy is not mutated.
func (g *strategyGenerator) OptimizeStrategy(ctx context.Context, strategy entity.MonetizationStrategy, feedback map[string]float64) (entity.MonetizationStrategy, error) {
	optimized := strategy
	optimized.Metrics = make(map[string]float64, len(strategy.Metrics)+len(feedback))
	for k, v := range strategy.Metrics {
		optimized.Metrics[k] = v
	}
	optimized.Recommendations = append([]string(nil), strategy.Recommendations...)

	if len(feedback) == 0 {
		return optimized, nil
	}

	var sum float64
	for k, v := range feedback {
		sum += v
		optimized.Metrics["feedback_"+k] = v
	}
	mean := sum / float64(len(feedback))

	optimized.ConfidenceScore = utils.Clamp(
		strategy.ConfidenceScore+g.learningRate*(mean-strategy.ConfidenceScore), 0, 1)
	optimized.Recommendations = demoteRejectedRecommendations(optimized.Recommendations, feedback)
	optimized.Revision = strategy.Revision + 1

	g.logger.Info("Strategy optimized",
		logger.StringField("strategy", strategy.Name),
		logger.Float64Field("confidence_before", strategy.ConfidenceScore),
		logger.Float64Field("confidence_after", optimized.ConfidenceScore),
	)
	return optimized, nil
}

// demoteRejectedRecommendations moves recommendations matched by a
// low-scoring feedback entry to the end of the list, keeping the relative
// order of both groups. A feedback key matches a recommendation when the key,
// with underscores read as spaces, appears in the recommendation text.
func demoteRejectedRecommendations(recommendations []string, feedback map[string]float64) []string {
	kept := make([]string, 0, len(recommendations))
	var demoted []string
	for _, recommendation := range recommendations {
		if recommendationRejected(recommendation, feedback) {
			demoted = append(demoted, recommendation)
			continue
		}
		kept = append(kept, recommendation)
	}
	return append(kept, demoted...)
}

func recommendationRejected(recommendation string, feedback map[string]float64) bool {
	lower := strings.ToLower(recommendation)
	for key, score := range feedback {
		if score >= feedbackDemotionThreshold {
			continue
		}
		needle := strings.ReplaceAll(strings.ToLower(key), "_", " ")
		if needle != "" && strings.Contains(lower, needle) {
			return true
		}
	}
	return false
}

// SaveStrategy serializes the strategy and stores it in the knowledge
// repository under the fixed category label.
func (g *strategyGenerator) SaveStrategy(ctx context.Context, strategy *entity.MonetizationStrategy) error {
	return g.knowledgeRepo.Save(ctx, strategy.String(), common.KnowledgeCategoryStrategies)
}

// metricCompleteness is the fraction of rule inputs present in the processed
// business data, used as the data-quality half of the confidence score.
func metricCompleteness(processedBusinessData map[string]interface{}) float64 {
	if len(inefficiencyRules) == 0 {
		return 0
	}
	present := 0
	for _, rule := range inefficiencyRules {
		if _, ok := numeric(processedBusinessData, rule.businessKey); ok {
			present++
		}
	}
	return float64(present) / float64(len(inefficiencyRules))
}
