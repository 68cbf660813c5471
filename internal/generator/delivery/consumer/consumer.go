package consumer

import (
	"context"
	"sync"
	"time"

	"golang-monetization-engine/internal/generator/config"
	"golang-monetization-engine/internal/generator/service"
	"golang-monetization-engine/pkg/common"
	"golang-monetization-engine/pkg/logger"
	"golang-monetization-engine/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// RedisConsumer manages the consumption of tasks from the Redis streams.
type RedisConsumer struct {
	cfg              *config.Config
	redisClient      *redis.Client
	generatorService service.GeneratorService
	optimizerService service.OptimizerService
	logger           *logger.Logger
	stopChan         chan struct{}
	wg               sync.WaitGroup
}

// NewRedisConsumer creates a new RedisConsumer.
func NewRedisConsumer(
	cfg *config.Config,
	redisClient *redis.Client,
	generatorService service.GeneratorService,
	optimizerService service.OptimizerService,
	log *logger.Logger,
) *RedisConsumer {
	return &RedisConsumer{
		cfg:              cfg,
		redisClient:      redisClient,
		generatorService: generatorService,
		optimizerService: optimizerService,
		logger:           log,
		stopChan:         make(chan struct{}),
	}
}

// Start begins the consumer's task processing loops.
func (c *RedisConsumer) Start(ctx context.Context) {
	c.logger.Info("Redis consumer started")
	c.RegisterStreamHandler(ctx, c.generatorService.ProcessTask, common.RedisStreamStrategyGenerate, c.cfg.Generator.RedisStreamGenerateTimeout)
	c.RegisterStreamHandler(ctx, c.optimizerService.ProcessTask, common.RedisStreamStrategyOptimize, c.cfg.Generator.RedisStreamOptimizeTimeout)

	// retry handlers
	c.RegisterTickerHandler(ctx, c.generatorService.ProcessRetries, c.cfg.Generator.RedisStreamGenerateRetryInterval, c.cfg.Generator.RedisStreamGenerateMaxIdleDuration, common.RedisStreamStrategyGenerate+"-retry")
	c.RegisterTickerHandler(ctx, c.optimizerService.ProcessRetries, c.cfg.Generator.RedisStreamOptimizeRetryInterval, c.cfg.Generator.RedisStreamOptimizeMaxIdleDuration, common.RedisStreamStrategyOptimize+"-retry")
}

// RegisterStreamHandler runs fn in a loop until the consumer stops.
func (c *RedisConsumer) RegisterStreamHandler(ctx context.Context, fn func(ctx context.Context), streamName string, timeout time.Duration) {
	c.logger.Info("Registering stream handler", logger.Field("stream", streamName))
	c.wg.Add(1)
	utils.GoSafe(func() {
		defer c.wg.Done()
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("Redis consumer stopping due to context cancellation")
				return
			case <-c.stopChan:
				c.logger.Info("Redis consumer stopping")
				return
			default:
				ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
				fn(ctxTimeout)
				cancel()
			}
		}
	})
}

// RegisterTickerHandler runs fn on a fixed interval until the consumer stops.
func (c *RedisConsumer) RegisterTickerHandler(ctx context.Context, fn func(ctx context.Context), interval, timeout time.Duration, name string) {
	c.logger.Info("Registering ticker handler",
		logger.Field("name", name),
		logger.Field("interval", interval),
		logger.Field("timeout", timeout))
	c.wg.Add(1)
	utils.GoSafe(func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
				fn(ctxTimeout)
				cancel()
			case <-ctx.Done():
				c.logger.Info("Ticker handler stopping due to context cancellation", logger.Field("name", name))
				return
			case <-c.stopChan:
				c.logger.Info("Ticker handler stopping", logger.Field("name", name))
				return
			}
		}
	})
}

// Stop gracefully shuts down the consumer.
func (c *RedisConsumer) Stop() {
	close(c.stopChan)
	c.wg.Wait()
	c.logger.Info("Redis consumer stopped")
}
