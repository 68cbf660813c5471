package repository

import (
	"context"

	"golang-monetization-engine/internal/entity"

	"gorm.io/gorm"
)

// HistoryRepository defines data operations for generation history records.
type HistoryRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.GenerationHistory, error)
	Update(ctx context.Context, history *entity.GenerationHistory) error
}

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new GORM-based history repository.
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

// FindByID retrieves a history record by its ID.
func (r *historyRepository) FindByID(ctx context.Context, id uint) (*entity.GenerationHistory, error) {
	var history entity.GenerationHistory
	if err := r.db.WithContext(ctx).First(&history, id).Error; err != nil {
		return nil, err
	}
	return &history, nil
}

// Update updates a history record.
func (r *historyRepository) Update(ctx context.Context, history *entity.GenerationHistory) error {
	return r.db.WithContext(ctx).Updates(history).Error
}
