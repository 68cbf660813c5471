package repository

import (
	"context"

	"golang-monetization-engine/internal/entity"

	"gorm.io/gorm"
)

// StrategyRepository defines data operations for persisted strategies.
type StrategyRepository interface {
	Create(ctx context.Context, strategy *entity.MonetizationStrategy) error
	FindByID(ctx context.Context, id int64) (*entity.MonetizationStrategy, error)
	Update(ctx context.Context, strategy *entity.MonetizationStrategy) error
}

type strategyRepository struct {
	db *gorm.DB
}

// NewStrategyRepository creates a new GORM-based strategy repository.
func NewStrategyRepository(db *gorm.DB) StrategyRepository {
	return &strategyRepository{db: db}
}

// Create persists a new strategy.
func (r *strategyRepository) Create(ctx context.Context, strategy *entity.MonetizationStrategy) error {
	return r.db.WithContext(ctx).Create(strategy).Error
}

// FindByID retrieves a strategy by its ID.
func (r *strategyRepository) FindByID(ctx context.Context, id int64) (*entity.MonetizationStrategy, error) {
	var strategy entity.MonetizationStrategy
	if err := r.db.WithContext(ctx).First(&strategy, id).Error; err != nil {
		return nil, err
	}
	return &strategy, nil
}

// Update saves a revised strategy.
func (r *strategyRepository) Update(ctx context.Context, strategy *entity.MonetizationStrategy) error {
	return r.db.WithContext(ctx).Save(strategy).Error
}
