package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang-monetization-engine/internal/generator/config"
	"golang-monetization-engine/internal/generator/delivery/consumer"
	"golang-monetization-engine/internal/generator/repository"
	"golang-monetization-engine/internal/generator/service"
	"golang-monetization-engine/pkg/common"
	"golang-monetization-engine/pkg/logger"
	"golang-monetization-engine/pkg/postgres"
	"golang-monetization-engine/pkg/redis"
	"golang-monetization-engine/pkg/telegram"

	"google.golang.org/genai"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the worker service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Worker Service", zap.String("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", zap.Error(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis
	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Create the consumer groups if they don't exist.
	// MKSTREAM creates the stream if it doesn't exist.
	if err := redisClient.XGroupCreateMkStream(context.Background(), common.RedisStreamStrategyGenerate, common.RedisStreamGroup, "0").Err(); err != nil {
		if err.Error() != "BUSYGROUP Consumer Group name already exists" {
			appLogger.Fatal("Failed to create consumer group", logger.ErrorField(err))
		}
	}
	if err := redisClient.XGroupCreateMkStream(context.Background(), common.RedisStreamStrategyOptimize, common.RedisStreamGroup, "0").Err(); err != nil {
		if err.Error() != "BUSYGROUP Consumer Group name already exists" {
			appLogger.Fatal("Failed to create consumer group", logger.ErrorField(err))
		}
	}

	// Initialize repositories
	jobRepo := repository.NewJobRepository(db.DB)
	historyRepo := repository.NewHistoryRepository(db.DB)
	strategyRepo := repository.NewStrategyRepository(db.DB)
	knowledgeRepo := repository.NewKnowledgeRepository(db.DB)

	// Initialize AI provider
	var aiRepo repository.AIRepository
	if cfg.AI.Enabled {
		switch cfg.AI.Provider {
		case "gemini":
			genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
				APIKey: cfg.Gemini.APIKey,
			})
			if err != nil {
				appLogger.Fatal("Failed to initialize Gemini AI client", zap.Error(err))
			}
			repo, err := repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
			if err != nil {
				appLogger.Fatal("Failed to initialize Gemini AI repository", zap.Error(err))
			}
			aiRepo = repo
		default:
			appLogger.Fatal("Invalid AI provider specified in config", zap.String("provider", cfg.AI.Provider))
		}
	}

	var telegramNotifier telegram.Notifier
	if cfg.Telegram.Enabled {
		telegramNotifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", zap.Error(err))
		}
	}

	// Initialize generation pipeline
	cleaner := service.NewDataCleaner(appLogger)
	dataProcessor := service.NewDataProcessor(cleaner, appLogger)
	feedScraper := service.NewFeedScraper(cfg, appLogger)
	marketAnalyzer := service.NewMarketAnalyzer(cleaner, feedScraper, appLogger, cfg.Analyzer.BenchmarkCacheTTL)
	strategyGenerator := service.NewStrategyGenerator(dataProcessor, marketAnalyzer, knowledgeRepo, aiRepo, appLogger, cfg.Generator.OptimizeLearningRate)

	// Initialize stream services
	generatorSvc := service.NewGeneratorService(cfg, appLogger, redisClient.Client, strategyGenerator, jobRepo, historyRepo, strategyRepo, telegramNotifier)
	optimizerSvc := service.NewOptimizerService(cfg, appLogger, redisClient.Client, strategyGenerator, strategyRepo)

	// Initialize and start the Redis consumer
	redisConsumer := consumer.NewRedisConsumer(cfg, redisClient.Client, generatorSvc, optimizerSvc, appLogger)
	redisConsumer.Start(ctx)

	appLogger.Info("Worker service started. Waiting for tasks...")

	// Wait for interrupt signal to gracefully shut down the service
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker service...")
	cancel()
	redisConsumer.Stop()
	appLogger.Info("Worker service stopped.")
}

func main() {
	rootCmd := &cobra.Command{Use: "worker-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-worker.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing worker-service CLI: %s\n", err)
		os.Exit(1)
	}
}
