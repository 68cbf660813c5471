package service

import (
	"context"
	"encoding/json"
	"time"

	"golang-monetization-engine/internal/generator/config"
	"golang-monetization-engine/internal/generator/dto"
	"golang-monetization-engine/internal/generator/repository"
	"golang-monetization-engine/pkg/common"
	"golang-monetization-engine/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// OptimizerService consumes feedback tasks from the strategy.optimize stream
// and applies them to persisted strategies.
type OptimizerService interface {
	ProcessTask(ctx context.Context)
	ProcessRetries(ctx context.Context)
	Execute(ctx context.Context, data dto.StreamDataStrategyOptimize) error
}

type optimizerService struct {
	cfg          *config.Config
	log          *logger.Logger
	redisClient  *redis.Client
	generator    StrategyGenerator
	strategyRepo repository.StrategyRepository
}

// NewOptimizerService creates a new OptimizerService.
func NewOptimizerService(
	cfg *config.Config,
	log *logger.Logger,
	redisClient *redis.Client,
	generator StrategyGenerator,
	strategyRepo repository.StrategyRepository,
) OptimizerService {
	return &optimizerService{
		cfg:          cfg,
		log:          log,
		redisClient:  redisClient,
		generator:    generator,
		strategyRepo: strategyRepo,
	}
}

// ProcessTask dequeues and executes a single optimization task.
func (s *optimizerService) ProcessTask(ctx context.Context) {
	streams, err := s.redisClient.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer,
		Streams:  []string{common.RedisStreamStrategyOptimize, ">"},
		Count:    1,
		Block:    2 * time.Second,
	}).Result()
	if err != nil {
		if err == context.Canceled || err == redis.Nil {
			return
		}
		s.log.Error("Failed to read from stream", logger.ErrorField(err))
		return
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return
	}

	message := streams[0].Messages[0]
	taskData, ok := message.Values["payload"].(string)
	if !ok {
		s.log.Error("field 'payload' not found or not a string in stream message", logger.Field("message_id", message.ID))
		return
	}

	var streamData dto.StreamDataStrategyOptimize
	if err := json.Unmarshal([]byte(taskData), &streamData); err != nil {
		s.log.Error("Failed to unmarshal task data", logger.ErrorField(err), logger.Field("message_id", message.ID))
		if err := s.AckNDel(ctx, common.RedisStreamStrategyOptimize, message.ID); err != nil {
			s.log.Error("Failed to acknowledge malformed message", logger.ErrorField(err), logger.Field("message_id", message.ID))
		}
		return
	}

	if err := s.Execute(ctx, streamData); err != nil {
		s.log.Error("Failed to execute optimization task", logger.ErrorField(err), logger.Field("message_id", message.ID), logger.Field("strategy_id", streamData.StrategyID))
		return
	}
	if err := s.AckNDel(ctx, common.RedisStreamStrategyOptimize, message.ID); err != nil {
		s.log.Error("Failed to acknowledge and delete optimization task", logger.ErrorField(err), logger.Field("message_id", message.ID))
	}
}

// Execute applies feedback to a persisted strategy and stores the revision.
func (s *optimizerService) Execute(ctx context.Context, streamData dto.StreamDataStrategyOptimize) error {
	strategy, err := s.strategyRepo.FindByID(ctx, streamData.StrategyID)
	if err != nil {
		s.log.Error("Failed to find strategy", logger.ErrorField(err), logger.Field("strategy_id", streamData.StrategyID))
		return err
	}

	optimized, err := s.generator.OptimizeStrategy(ctx, *strategy, streamData.Feedback)
	if err != nil {
		s.log.Error("Failed to optimize strategy", logger.ErrorField(err), logger.Field("strategy_id", streamData.StrategyID))
		return err
	}

	if err := s.strategyRepo.Update(ctx, &optimized); err != nil {
		s.log.Error("Failed to update strategy", logger.ErrorField(err), logger.Field("strategy_id", streamData.StrategyID))
		return err
	}

	if err := s.generator.SaveStrategy(ctx, &optimized); err != nil {
		s.log.Error("Failed to save optimized strategy", logger.ErrorField(err), logger.Field("strategy_id", streamData.StrategyID))
		return err
	}
	return nil
}

// AckNDel acknowledges and deletes a processed stream message.
func (s *optimizerService) AckNDel(ctx context.Context, streamName, messageID string) error {
	if err := s.redisClient.XAck(ctx, streamName, common.RedisStreamGroup, messageID).Err(); err != nil {
		return err
	}
	return s.redisClient.XDel(ctx, streamName, messageID).Err()
}

// ProcessRetries claims optimization tasks pending longer than the configured
// idle duration and re-executes them.
func (s *optimizerService) ProcessRetries(ctx context.Context) {
	msgs, _, err := s.redisClient.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   common.RedisStreamStrategyOptimize,
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer + "-retry",
		MinIdle:  s.cfg.Generator.RedisStreamOptimizeMaxIdleDuration,
		Start:    "0",
		Count:    1,
	}).Result()

	if err != nil {
		s.log.Error("Failed to claim optimization task on retry", logger.ErrorField(err))
		return
	}

	if len(msgs) == 0 {
		return
	}

	pendingInfo, err := s.redisClient.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: common.RedisStreamStrategyOptimize,
		Group:  common.RedisStreamGroup,
		Start:  msgs[0].ID,
		End:    msgs[0].ID,
		Count:  1,
	}).Result()

	if err != nil {
		s.log.Error("Failed to get pending info", logger.ErrorField(err))
		return
	}

	if len(pendingInfo) == 0 {
		s.log.Warn("pending msg not found, but exists on xautoclaim",
			logger.StringField("stream", common.RedisStreamStrategyOptimize),
			logger.StringField("message_id", msgs[0].ID))
		return
	}

	msg := msgs[0]
	taskData, ok := msg.Values["payload"].(string)
	if !ok {
		s.log.Error("field 'payload' not found or not a string in stream message", logger.Field("message_id", msg.ID))
		return
	}

	var streamData dto.StreamDataStrategyOptimize
	if err := json.Unmarshal([]byte(taskData), &streamData); err != nil {
		s.log.Error("Failed to unmarshal task data", logger.ErrorField(err), logger.Field("message_id", msg.ID))
		return
	}

	if err := s.Execute(ctx, streamData); err != nil {
		if pendingInfo[0].RetryCount+1 >= int64(s.cfg.Generator.RedisStreamOptimizeMaxRetry) {
			s.log.Error("pending msg retry count exceeded",
				logger.StringField("stream", common.RedisStreamStrategyOptimize),
				logger.StringField("message_id", msg.ID),
				logger.IntField("retry_count", int(pendingInfo[0].RetryCount+1)),
				logger.IntField("max_retry", s.cfg.Generator.RedisStreamOptimizeMaxRetry),
			)
			if err := s.AckNDel(ctx, common.RedisStreamStrategyOptimize, msg.ID); err != nil {
				s.log.Error("Failed to acknowledge and delete optimization task", logger.ErrorField(err), logger.Field("message_id", msg.ID))
			}
		}
		return
	}

	if err := s.AckNDel(ctx, common.RedisStreamStrategyOptimize, msg.ID); err != nil {
		s.log.Error("Failed to acknowledge and delete optimization task", logger.ErrorField(err), logger.Field("message_id", msg.ID))
		return
	}
	s.log.Info("Retry optimization task processed successfully", logger.Field("strategy_id", streamData.StrategyID))
}
