package repository

import (
	"context"

	"golang-monetization-engine/internal/entity"

	"gorm.io/gorm"
)

// StrategyRepository defines the interface for reading and writing monetization strategies.
type StrategyRepository interface {
	Create(ctx context.Context, strategy *entity.MonetizationStrategy) error
	FindByID(ctx context.Context, id int64) (*entity.MonetizationStrategy, error)
	FindAll(ctx context.Context) ([]entity.MonetizationStrategy, error)
	FindAllByJobID(ctx context.Context, jobID uint) ([]entity.MonetizationStrategy, error)
	Update(ctx context.Context, strategy *entity.MonetizationStrategy) error
}

// NewStrategyRepository creates a new GORM-based strategy repository.
func NewStrategyRepository(db *gorm.DB) StrategyRepository {
	return &strategyRepository{db: db}
}

type strategyRepository struct {
	db *gorm.DB
}

// Create persists a new monetization strategy.
func (r *strategyRepository) Create(ctx context.Context, strategy *entity.MonetizationStrategy) error {
	return r.db.WithContext(ctx).Create(strategy).Error
}

// FindByID retrieves a monetization strategy by its ID.
func (r *strategyRepository) FindByID(ctx context.Context, id int64) (*entity.MonetizationStrategy, error) {
	var strategy entity.MonetizationStrategy
	if err := r.db.WithContext(ctx).First(&strategy, id).Error; err != nil {
		return nil, err
	}
	return &strategy, nil
}

// FindAll retrieves all monetization strategies, newest first.
func (r *strategyRepository) FindAll(ctx context.Context) ([]entity.MonetizationStrategy, error) {
	var strategies []entity.MonetizationStrategy
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&strategies).Error; err != nil {
		return nil, err
	}
	return strategies, nil
}

// FindAllByJobID retrieves all strategies produced by a specific job.
func (r *strategyRepository) FindAllByJobID(ctx context.Context, jobID uint) ([]entity.MonetizationStrategy, error) {
	var strategies []entity.MonetizationStrategy
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).Order("created_at desc").Find(&strategies).Error; err != nil {
		return nil, err
	}
	return strategies, nil
}

// Update updates an existing monetization strategy.
func (r *strategyRepository) Update(ctx context.Context, strategy *entity.MonetizationStrategy) error {
	return r.db.WithContext(ctx).Save(strategy).Error
}
