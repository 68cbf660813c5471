package config

import (
	"golang-monetization-engine/pkg/config"
)

// Scheduler holds schedule polling configuration.
type Scheduler struct {
	PollingInterval string `mapstructure:"polling_interval"`
}

// Generator holds the strategy generation knobs used by the API service for
// synchronous generation.
type Generator struct {
	OptimizeLearningRate float64 `mapstructure:"optimize_learning_rate"`
}

// Config holds the full configuration for the API service.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	Database  config.Database `mapstructure:"database"`
	Redis     config.Redis    `mapstructure:"redis"`
	API       config.API      `mapstructure:"api"`
	Scheduler Scheduler       `mapstructure:"scheduler"`
	Generator Generator       `mapstructure:"generator"`
}

// Load loads the API configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
