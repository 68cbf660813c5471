package repository

import (
	"context"

	"golang-monetization-engine/internal/entity"

	"gorm.io/gorm"
)

// JobRepository defines the interface for generation job data operations.
type JobRepository interface {
	Create(ctx context.Context, job *entity.GenerationJob) error
	FindByID(ctx context.Context, id uint) (*entity.GenerationJob, error)
	FindAll(ctx context.Context) ([]entity.GenerationJob, error)
	Update(ctx context.Context, job *entity.GenerationJob) error
	Delete(ctx context.Context, id uint) error
}

// NewJobRepository creates a new GORM-based job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

type jobRepository struct {
	db *gorm.DB
}

// Create creates a new generation job in the database.
func (r *jobRepository) Create(ctx context.Context, job *entity.GenerationJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// FindByID retrieves a generation job by its ID.
func (r *jobRepository) FindByID(ctx context.Context, id uint) (*entity.GenerationJob, error) {
	var job entity.GenerationJob
	if err := r.db.WithContext(ctx).Preload("Schedules").First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// FindAll retrieves all generation jobs.
func (r *jobRepository) FindAll(ctx context.Context) ([]entity.GenerationJob, error) {
	var jobs []entity.GenerationJob
	if err := r.db.WithContext(ctx).Preload("Schedules").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update updates an existing job and its associated schedules within a transaction.
func (r *jobRepository) Update(ctx context.Context, job *entity.GenerationJob) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Remove all existing schedules for this job to ensure a clean update.
		if err := tx.Where("job_id = ?", job.ID).Delete(&entity.GenerationSchedule{}).Error; err != nil {
			return err
		}
		return tx.Save(job).Error
	})
}

// Delete removes a job together with its schedules and history.
func (r *jobRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&entity.GenerationHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", id).Delete(&entity.GenerationSchedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.GenerationJob{}, id).Error
	})
}
