package repository

import (
	"context"

	"golang-monetization-engine/internal/entity"

	"gorm.io/gorm"
)

// JobRepository provides read access to generation jobs from the worker.
type JobRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.GenerationJob, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new GORM-based job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// FindByID retrieves a generation job by its ID.
func (r *jobRepository) FindByID(ctx context.Context, id uint) (*entity.GenerationJob, error) {
	var job entity.GenerationJob
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}
