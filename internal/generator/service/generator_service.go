package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"golang-monetization-engine/internal/entity"
	"golang-monetization-engine/internal/generator/config"
	"golang-monetization-engine/internal/generator/dto"
	"golang-monetization-engine/internal/generator/repository"
	"golang-monetization-engine/pkg/common"
	"golang-monetization-engine/pkg/logger"
	"golang-monetization-engine/pkg/telegram"
	"golang-monetization-engine/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// GeneratorService consumes generation tasks from the strategy.generate stream
// and runs the full generation pipeline for each.
type GeneratorService interface {
	ProcessTask(ctx context.Context)
	ProcessRetries(ctx context.Context)
	Execute(ctx context.Context, data dto.StreamDataStrategyGenerate) error
}

type generatorService struct {
	cfg          *config.Config
	log          *logger.Logger
	redisClient  *redis.Client
	generator    StrategyGenerator
	jobRepo      repository.JobRepository
	historyRepo  repository.HistoryRepository
	strategyRepo repository.StrategyRepository
	telegramBot  telegram.Notifier
}

// NewGeneratorService creates a new GeneratorService. The Telegram notifier
// may be nil when notifications are disabled.
func NewGeneratorService(
	cfg *config.Config,
	log *logger.Logger,
	redisClient *redis.Client,
	generator StrategyGenerator,
	jobRepo repository.JobRepository,
	historyRepo repository.HistoryRepository,
	strategyRepo repository.StrategyRepository,
	telegramBot telegram.Notifier,
) GeneratorService {
	return &generatorService{
		cfg:          cfg,
		log:          log,
		redisClient:  redisClient,
		generator:    generator,
		jobRepo:      jobRepo,
		historyRepo:  historyRepo,
		strategyRepo: strategyRepo,
		telegramBot:  telegramBot,
	}
}

// ProcessTask dequeues and executes a single generation task.
func (s *generatorService) ProcessTask(ctx context.Context) {
	streams, err := s.redisClient.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer,
		Streams:  []string{common.RedisStreamStrategyGenerate, ">"}, // ">" means only new messages
		Count:    1,
		Block:    2 * time.Second, // Block briefly to allow graceful shutdown
	}).Result()
	if err != nil {
		// Context cancellation and redis.Nil are expected during shutdown or
		// idle periods.
		if err == context.Canceled || err == redis.Nil {
			return
		}
		s.log.Error("Failed to read from stream", logger.ErrorField(err))
		return
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		s.log.Debug("No messages found", logger.StringField("stream", common.RedisStreamStrategyGenerate))
		return
	}

	message := streams[0].Messages[0]

	// The task data is expected to be a JSON string in the 'payload' field.
	taskData, ok := message.Values["payload"].(string)
	if !ok {
		s.log.Error("field 'payload' not found or not a string in stream message", logger.Field("message_id", message.ID))
		return
	}

	var streamData dto.StreamDataStrategyGenerate
	if err := json.Unmarshal([]byte(taskData), &streamData); err != nil {
		s.log.Error("Failed to unmarshal task data", logger.ErrorField(err), logger.Field("message_id", message.ID))
		// Acknowledge to prevent reprocessing of a malformed message.
		if err := s.AckNDel(ctx, common.RedisStreamStrategyGenerate, message.ID); err != nil {
			s.log.Error("Failed to acknowledge malformed message", logger.ErrorField(err), logger.Field("message_id", message.ID))
		}
		return
	}

	s.log.Debug("Processing generation task", logger.Field("job_id", streamData.JobID))

	if err := s.Execute(ctx, streamData); err != nil {
		s.log.Error("Failed to execute generation task", logger.ErrorField(err), logger.Field("message_id", message.ID), logger.Field("job_id", streamData.JobID))
		return
	}
	if err := s.AckNDel(ctx, common.RedisStreamStrategyGenerate, message.ID); err != nil {
		s.log.Error("Failed to acknowledge and delete generation task", logger.ErrorField(err), logger.Field("message_id", message.ID))
		return
	}

	s.log.Debug("Generation task processed successfully", logger.Field("job_id", streamData.JobID))
}

// Execute loads the job, runs the generation pipeline and records the outcome
// on the history row.
func (s *generatorService) Execute(ctx context.Context, streamData dto.StreamDataStrategyGenerate) error {
	job, err := s.jobRepo.FindByID(ctx, streamData.JobID)
	if err != nil {
		s.log.Error("Failed to find generation job", logger.ErrorField(err), logger.Field("job_id", streamData.JobID))
		return err
	}

	history, err := s.historyRepo.FindByID(ctx, streamData.HistoryID)
	if err != nil {
		s.log.Error("Failed to find generation history", logger.ErrorField(err), logger.Field("history_id", streamData.HistoryID))
		return err
	}

	execCtx := ctx
	if job.Timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, time.Duration(job.Timeout)*time.Second)
		defer cancel()
	}

	strategies, execErr := s.runPipeline(execCtx, job)
	s.recordOutcome(ctx, job, history, strategies, execErr)
	if execErr != nil {
		return execErr
	}

	if job.Notify && s.telegramBot != nil {
		if err := s.telegramBot.SendMessageHTML(telegram.FormatStrategiesMessage(job.Name, strategies)); err != nil {
			s.log.Error("Failed to send notification", logger.ErrorField(err))
		}
	}
	return nil
}

func (s *generatorService) runPipeline(ctx context.Context, job *entity.GenerationJob) ([]entity.MonetizationStrategy, error) {
	var businessData map[string]interface{}
	if err := json.Unmarshal(job.BusinessData, &businessData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal business data: %w", err)
	}

	var marketTrends map[string]interface{}
	if err := json.Unmarshal(job.MarketTrends, &marketTrends); err != nil {
		return nil, fmt.Errorf("failed to unmarshal market trends: %w", err)
	}

	if len(job.FeedURLs) > 0 {
		var feedURLs []string
		if err := json.Unmarshal(job.FeedURLs, &feedURLs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal feed urls: %w", err)
		}
		if len(feedURLs) > 0 {
			if marketTrends == nil {
				marketTrends = map[string]interface{}{}
			}
			marketTrends["feed_urls"] = feedURLs
		}
	}

	strategies, err := s.generator.GenerateStrategies(ctx, businessData, marketTrends)
	if err != nil {
		return nil, err
	}

	for i := range strategies {
		strategies[i].JobID = utils.ToPointer(job.ID)
		if err := s.strategyRepo.Create(ctx, &strategies[i]); err != nil {
			return nil, err
		}
		if err := s.generator.SaveStrategy(ctx, &strategies[i]); err != nil {
			return nil, err
		}
	}
	return strategies, nil
}

func (s *generatorService) recordOutcome(ctx context.Context, job *entity.GenerationJob, history *entity.GenerationHistory, strategies []entity.MonetizationStrategy, execErr error) {
	if execErr != nil {
		history.Status = entity.StatusFailed
		history.ErrorMessage = sql.NullString{String: execErr.Error(), Valid: true}
	} else {
		history.Status = entity.StatusCompleted
		history.StrategyCount = len(strategies)

		summary := dto.GenerationSummaryResult{
			JobID:         job.ID,
			StrategyCount: len(strategies),
		}
		for _, strategy := range strategies {
			summary.StrategyNames = append(summary.StrategyNames, strategy.Name)
			var pattern dto.InefficiencyPattern
			if err := json.Unmarshal(strategy.SourcePattern, &pattern); err == nil && pattern.Kind != "" {
				summary.PatternKinds = append(summary.PatternKinds, pattern.Kind)
			}
		}
		if output, err := json.Marshal(summary); err == nil {
			history.Output = sql.NullString{String: string(output), Valid: true}
		}
	}
	history.CompletedAt = sql.NullTime{Time: utils.TimeNowUTC(), Valid: true}

	if err := s.historyRepo.Update(ctx, history); err != nil {
		s.log.Error("Failed to update generation history", logger.ErrorField(err), logger.Field("history_id", history.ID))
	}
}

// AckNDel acknowledges and deletes a processed stream message.
func (s *generatorService) AckNDel(ctx context.Context, streamName, messageID string) error {
	if err := s.redisClient.XAck(ctx, streamName, common.RedisStreamGroup, messageID).Err(); err != nil {
		s.log.Error("Failed to acknowledge generation task", logger.ErrorField(err), logger.Field("message_id", messageID))
		return err
	}
	if err := s.redisClient.XDel(ctx, streamName, messageID).Err(); err != nil {
		s.log.Error("Failed to delete generation task", logger.ErrorField(err), logger.Field("message_id", messageID))
		return err
	}
	return nil
}

// ProcessRetries claims generation tasks that have been pending longer than
// the configured idle duration and re-executes them, alerting when the retry
// budget is exhausted.
func (s *generatorService) ProcessRetries(ctx context.Context) {
	msgs, _, err := s.redisClient.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   common.RedisStreamStrategyGenerate,
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer + "-retry",
		MinIdle:  s.cfg.Generator.RedisStreamGenerateMaxIdleDuration,
		Start:    "0",
		Count:    1,
	}).Result()

	if err != nil {
		s.log.Error("Failed to claim generation task on retry", logger.ErrorField(err))
		return
	}

	if len(msgs) == 0 {
		s.log.Debug("Retry: no pending messages found", logger.StringField("stream", common.RedisStreamStrategyGenerate))
		return
	}

	pendingInfo, err := s.redisClient.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: common.RedisStreamStrategyGenerate,
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
			logger.StringField("stream", common.RedisStreamStrategyGenerate),
			logger.StringField("message_id", msgs[0].ID))
		return
	}

	msg := msgs[0]
	taskData, ok := msg.Values["payload"].(string)
	if !ok {
		s.log.Error("field 'payload' not found or not a string in stream message", logger.Field("message_id", msg.ID))
		return
	}

	var streamData dto.StreamDataStrategyGenerate
	if err := json.Unmarshal([]byte(taskData), &streamData); err != nil {
		s.log.Error("Failed to unmarshal task data", logger.ErrorField(err), logger.Field("message_id", msg.ID))
		return
	}

	if err := s.Execute(ctx, streamData); err != nil {
		s.log.Error("Failed to execute generation task on retry", logger.ErrorField(err), logger.Field("message_id", msg.ID), logger.Field("job_id", streamData.JobID))

		if pendingInfo[0].RetryCount+1 >= int64(s.cfg.Generator.RedisStreamGenerateMaxRetry) {
			s.log.Error("pending msg retry count exceeded",
				logger.StringField("stream", common.RedisStreamStrategyGenerate),
				logger.StringField("message_id", msg.ID),
				logger.IntField("retry_count", int(pendingInfo[0].RetryCount+1)),
				logger.IntField("max_retry", s.cfg.Generator.RedisStreamGenerateMaxRetry),
			)
			if s.telegramBot != nil {
				errType := fmt.Sprintf("Retry count exceeded for event %s", common.RedisStreamStrategyGenerate)
				rawJSON, _ := json.Marshal(streamData)
				msgTelegram := telegram.FormatErrorAlertMessage(utils.TimeNowUTC(), errType, err.Error(), string(rawJSON))
				if err := s.telegramBot.SendMessage(msgTelegram); err != nil {
					s.log.Error("Failed to send retry-exceeded alert", logger.ErrorField(err))
				}
			}
			if err := s.AckNDel(ctx, common.RedisStreamStrategyGenerate, msg.ID); err != nil {
				s.log.Error("Failed to acknowledge and delete generation task", logger.ErrorField(err), logger.Field("message_id", msg.ID))
			}
			return
		}

		return
	}

	if err := s.AckNDel(ctx, common.RedisStreamStrategyGenerate, msg.ID); err != nil {
		s.log.Error("Failed to acknowledge and delete generation task", logger.ErrorField(err), logger.Field("message_id", msg.ID))
		return
	}
	s.log.Info("Retry generation task processed successfully", logger.Field("job_id", streamData.JobID))
}
