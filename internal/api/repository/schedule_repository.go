package repository

import (
	"context"

	"golang-monetization-engine/internal/entity"
	"golang-monetization-engine/pkg/utils"

	"gorm.io/gorm"
)

// ScheduleRepository defines the interface for generation schedule data operations.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.GenerationSchedule) error
	FindByID(ctx context.Context, id uint) (*entity.GenerationSchedule, error)
	FindAll(ctx context.Context) ([]entity.GenerationSchedule, error)
	Update(ctx context.Context, schedule *entity.GenerationSchedule) error
	Delete(ctx context.Context, id uint) error
	FindDueSchedules(ctx context.Context) ([]entity.GenerationSchedule, error)
}

// NewScheduleRepository creates a new GORM-based generation schedule repository.
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

type scheduleRepository struct {
	db *gorm.DB
}

// Create creates a new generation schedule.
func (r *scheduleRepository) Create(ctx context.Context, schedule *entity.GenerationSchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

// FindByID retrieves a generation schedule by its ID.
func (r *scheduleRepository) FindByID(ctx context.Context, id uint) (*entity.GenerationSchedule, error) {
	var schedule entity.GenerationSchedule
	if err := r.db.WithContext(ctx).First(&schedule, id).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

// FindAll retrieves all generation schedules.
func (r *scheduleRepository) FindAll(ctx context.Context) ([]entity.GenerationSchedule, error) {
	var schedules []entity.GenerationSchedule
	if err := r.db.WithContext(ctx).Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// Update updates a generation schedule.
func (r *scheduleRepository) Update(ctx context.Context, schedule *entity.GenerationSchedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

// Delete removes a generation schedule by its ID.
func (r *scheduleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.GenerationSchedule{}, id).Error
}

// FindDueSchedules finds all active schedules that are due for execution.
func (r *scheduleRepository) FindDueSchedules(ctx context.Context) ([]entity.GenerationSchedule, error) {
	var schedules []entity.GenerationSchedule
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND (next_execution IS NULL OR next_execution <= ?)", true, utils.TimeNowUTC()).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}
