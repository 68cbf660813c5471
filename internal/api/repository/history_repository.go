package repository

import (
	"context"

	"golang-monetization-engine/internal/entity"

	"gorm.io/gorm"
)

// HistoryRepository defines the interface for generation history data operations.
type HistoryRepository interface {
	Create(ctx context.Context, history *entity.GenerationHistory) error
	FindByID(ctx context.Context, id uint) (*entity.GenerationHistory, error)
	FindAll(ctx context.Context) ([]entity.GenerationHistory, error)
	FindAllByJobID(ctx context.Context, jobID uint) ([]entity.GenerationHistory, error)
	Update(ctx context.Context, history *entity.GenerationHistory) error
}

// NewHistoryRepository creates a new GORM-based generation history repository.
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

type historyRepository struct {
	db *gorm.DB
}

// Create creates a new generation history record.
func (r *historyRepository) Create(ctx context.Context, history *entity.GenerationHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

// FindByID retrieves a generation history record by its ID.
func (r *historyRepository) FindByID(ctx context.Context, id uint) (*entity.GenerationHistory, error) {
	var history entity.GenerationHistory
	if err := r.db.WithContext(ctx).First(&history, id).Error; err != nil {
		return nil, err
	}
	return &history, nil
}

// FindAll retrieves all generation history records, newest first.
func (r *historyRepository) FindAll(ctx context.Context) ([]entity.GenerationHistory, error) {
	var histories []entity.GenerationHistory
	if err := r.db.WithContext(ctx).Order("started_at desc").Find(&histories).Error; err != nil {
		return nil, err
	}
	return histories, nil
}

// FindAllByJobID retrieves all generation history records for a specific job.
func (r *historyRepository) FindAllByJobID(ctx context.Context, jobID uint) ([]entity.GenerationHistory, error) {
	var histories []entity.GenerationHistory
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).Order("started_at desc").Find(&histories).Error; err != nil {
		return nil, err
	}
	return histories, nil
}

// Update updates a generation history record.
func (r *historyRepository) Update(ctx context.Context, history *entity.GenerationHistory) error {
	return r.db.WithContext(ctx).Updates(history).Error
}
