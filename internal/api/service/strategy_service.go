package service

import (
	"context"
	"encoding/json"

	"golang-monetization-engine/internal/api/dto"
	"golang-monetization-engine/internal/api/repository"
	"golang-monetization-engine/internal/entity"
	generatordto "golang-monetization-engine/internal/generator/dto"
	generatorservice "golang-monetization-engine/internal/generator/service"
	"golang-monetization-engine/pkg/common"
	"golang-monetization-engine/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// StrategyService defines the interface for synchronous strategy operations.
type StrategyService interface {
	Generate(ctx context.Context, req *dto.GenerateStrategiesRequest) ([]*dto.StrategyResponse, error)
	GetStrategyByID(ctx context.Context, id int64) (*dto.StrategyResponse, error)
	GetAllStrategies(ctx context.Context) ([]*dto.StrategyResponse, error)
	ApplyFeedback(ctx context.Context, id int64, req *dto.FeedbackRequest) (*dto.StrategyResponse, error)
}

// NewStrategyService creates a new strategy service.
func NewStrategyService(
	strategyRepo repository.StrategyRepository,
	generator generatorservice.StrategyGenerator,
	redisClient *redis.Client,
	streamMaxLen int64,
	logger *logger.Logger,
) StrategyService {
	return &strategyService{
		strategyRepo: strategyRepo,
		generator:    generator,
		redisClient:  redisClient,
		streamMaxLen: streamMaxLen,
		logger:       logger,
	}
}

type strategyService struct {
	strategyRepo repository.StrategyRepository
	generator    generatorservice.StrategyGenerator
	redisClient  *redis.Client
	streamMaxLen int64
	logger       *logger.Logger
}

// Generate runs the full generation pipeline synchronously and persists the
// resulting strategies.
func (s *strategyService) Generate(ctx context.Context, req *dto.GenerateStrategiesRequest) ([]*dto.StrategyResponse, error) {
	strategies, err := s.generator.GenerateStrategies(ctx, req.BusinessData, req.MarketTrends)
	if err != nil {
		s.logger.Error("Strategy generation failed", logger.ErrorField(err))
		return nil, err
	}

	responses := make([]*dto.StrategyResponse, 0, len(strategies))
	for i := range strategies {
		strategy := &strategies[i]
		if err := s.strategyRepo.Create(ctx, strategy); err != nil {
			s.logger.Error("Failed to persist strategy", logger.ErrorField(err), logger.Field("strategy_name", strategy.Name))
			return nil, err
		}
		if err := s.generator.SaveStrategy(ctx, strategy); err != nil {
			s.logger.Error("Failed to save strategy to knowledge base", logger.ErrorField(err), logger.Field("strategy_id", strategy.ID))
			return nil, err
		}
		responses = append(responses, s.mapToStrategyResponse(strategy))
	}

	return responses, nil
}

// GetStrategyByID retrieves a strategy by its ID.
func (s *strategyService) GetStrategyByID(ctx context.Context, id int64) (*dto.StrategyResponse, error) {
	strategy, err := s.strategyRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to find strategy", logger.ErrorField(err), logger.Field("strategy_id", id))
		return nil, err
	}
	return s.mapToStrategyResponse(strategy), nil
}

// GetAllStrategies retrieves all strategies.
func (s *strategyService) GetAllStrategies(ctx context.Context) ([]*dto.StrategyResponse, error) {
	strategies, err := s.strategyRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get all strategies", logger.ErrorField(err))
		return nil, err
	}

	responses := make([]*dto.StrategyResponse, 0, len(strategies))
	for i := range strategies {
		responses = append(responses, s.mapToStrategyResponse(&strategies[i]))
	}

	return responses, nil
}

// ApplyFeedback enqueues a feedback task for asynchronous optimization and
// returns the current state of the strategy.
func (s *strategyService) ApplyFeedback(ctx context.Context, id int64, req *dto.FeedbackRequest) (*dto.StrategyResponse, error) {
	strategy, err := s.strategyRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to find strategy for feedback", logger.ErrorField(err), logger.Field("strategy_id", id))
		return nil, err
	}

	taskPayload, err := json.Marshal(generatordto.StreamDataStrategyOptimize{
		StrategyID: strategy.ID,
		Feedback:   req.Feedback,
	})
	if err != nil {
		s.logger.Error("Failed to marshal feedback payload", logger.ErrorField(err), logger.Field("strategy_id", id))
		return nil, err
	}

	if err := s.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: common.RedisStreamStrategyOptimize,
		Values: map[string]interface{}{"payload": taskPayload},
		MaxLen: s.streamMaxLen,
	}).Err(); err != nil {
		s.logger.Error("Failed to enqueue feedback task", logger.ErrorField(err), logger.Field("strategy_id", id))
		return nil, err
	}

	s.logger.Info("Feedback task published", logger.Field("strategy_id", id))
	return s.mapToStrategyResponse(strategy), nil
}

// mapToStrategyResponse maps an entity.MonetizationStrategy to a dto.StrategyResponse.
func (s *strategyService) mapToStrategyResponse(strategy *entity.MonetizationStrategy) *dto.StrategyResponse {
	return &dto.StrategyResponse{
		ID:              strategy.ID,
		JobID:           strategy.JobID,
		Name:            strategy.Name,
		Description:     strategy.Description,
		Metrics:         strategy.Metrics,
		Recommendations: []string(strategy.Recommendations),
		ConfidenceScore: strategy.ConfidenceScore,
		Revision:        strategy.Revision,
		CreatedAt:       strategy.CreatedAt,
		UpdatedAt:       strategy.UpdatedAt,
	}
}
