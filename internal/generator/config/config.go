package config

import (
	"time"

	"golang-monetization-engine/pkg/config"
)

// Generator holds worker-specific configuration.
type Generator struct {
	MaxConcurrentTasks int `mapstructure:"max_concurrent_tasks"`

	// Strategy generation stream
	RedisStreamGenerateTimeout         time.Duration `mapstructure:"redis_stream_generate_timeout"`
	RedisStreamGenerateRetryInterval   time.Duration `mapstructure:"redis_stream_generate_retry_interval"`
	RedisStreamGenerateMaxIdleDuration time.Duration `mapstructure:"redis_stream_generate_max_idle_duration"`
	RedisStreamGenerateMaxRetry        int           `mapstructure:"redis_stream_generate_max_retry"`

	// Strategy optimization stream
	RedisStreamOptimizeTimeout         time.Duration `mapstructure:"redis_stream_optimize_timeout"`
	RedisStreamOptimizeRetryInterval   time.Duration `mapstructure:"redis_stream_optimize_retry_interval"`
	RedisStreamOptimizeMaxIdleDuration time.Duration `mapstructure:"redis_stream_optimize_max_idle_duration"`
	RedisStreamOptimizeMaxRetry        int           `mapstructure:"redis_stream_optimize_max_retry"`

	// OptimizeLearningRate controls how far confidence moves toward the mean
	// feedback score on each optimization pass.
	OptimizeLearningRate float64 `mapstructure:"optimize_learning_rate"`
}

// Analyzer holds market analyzer configuration.
type Analyzer struct {
	BenchmarkCacheTTL time.Duration `mapstructure:"benchmark_cache_ttl"`
	FeedFetchTimeout  time.Duration `mapstructure:"feed_fetch_timeout"`
	MaxFeedItems      int           `mapstructure:"max_feed_items"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	BaseURL             string `mapstructure:"base_url"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// AI holds configuration for AI providers.
type AI struct {
	Enabled  bool   `mapstructure:"enabled"`
	Provider string `mapstructure:"provider"`
}

// Config holds the full configuration for the worker service.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	Database  config.Database `mapstructure:"database"`
	Redis     config.Redis    `mapstructure:"redis"`
	Generator Generator       `mapstructure:"generator"`
	Analyzer  Analyzer        `mapstructure:"analyzer"`
	Gemini    Gemini          `mapstructure:"gemini"`
	AI        AI              `mapstructure:"ai"`
	Telegram  config.Telegram `mapstructure:"telegram"`
}

// Load loads the worker configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
