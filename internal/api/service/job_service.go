package service

import (
	"context"
	"encoding/json"

	"golang-monetization-engine/internal/api/dto"
	"golang-monetization-engine/internal/api/repository"
	"golang-monetization-engine/internal/entity"
	"golang-monetization-engine/pkg/logger"

	"gorm.io/datatypes"
)

// JobService defines the interface for managing generation jobs.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJobByID(ctx context.Context, id uint) (*dto.JobResponse, error)
	GetAllJobs(ctx context.Context) ([]*dto.JobResponse, error)
	UpdateJob(ctx context.Context, id uint, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	DeleteJob(ctx context.Context, id uint) error
}

// NewJobService creates a new job service.
func NewJobService(jobRepo repository.JobRepository, logger *logger.Logger) JobService {
	return &jobService{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

type jobService struct {
	jobRepo repository.JobRepository
	logger  *logger.Logger
}

// CreateJob handles the business logic for creating a new generation job.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	feedURLBytes, err := json.Marshal(req.FeedURLs)
	if err != nil {
		return nil, err
	}

	job := &entity.GenerationJob{
		Name:         req.Name,
		Description:  req.Description,
		BusinessData: datatypes.JSON(req.BusinessData),
		MarketTrends: datatypes.JSON(req.MarketTrends),
		FeedURLs:     datatypes.JSON(feedURLBytes),
		Notify:       req.Notify,
		Timeout:      req.Timeout,
	}

	for _, sDto := range req.Schedules {
		job.Schedules = append(job.Schedules, entity.GenerationSchedule{
			CronExpression: sDto.CronExpression,
			IsActive:       sDto.IsActive,
		})
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	return s.mapToJobResponse(job), nil
}

// GetJobByID retrieves a generation job by its ID.
func (s *jobService) GetJobByID(ctx context.Context, id uint) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapToJobResponse(job), nil
}

// GetAllJobs retrieves all generation jobs.
func (s *jobService) GetAllJobs(ctx context.Context) ([]*dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var jobResponses []*dto.JobResponse
	for _, job := range jobs {
		jobResponses = append(jobResponses, s.mapToJobResponse(&job))
	}

	return jobResponses, nil
}

// DeleteJob deletes a generation job by its ID.
func (s *jobService) DeleteJob(ctx context.Context, id uint) error {
	err := s.jobRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete job", logger.ErrorField(err), logger.Field("job_id", id))
		return err
	}
	s.logger.Info("Job deleted successfully", logger.Field("job_id", id))
	return nil
}

// UpdateJob handles the business logic for updating an existing generation job.
func (s *jobService) UpdateJob(ctx context.Context, id uint, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to find job for update", logger.ErrorField(err), logger.Field("job_id", id))
		return nil, err
	}

	feedURLBytes, err := json.Marshal(req.FeedURLs)
	if err != nil {
		s.logger.Error("Failed to marshal feed URLs", logger.ErrorField(err))
		return nil, err
	}

	job.Name = req.Name
	job.Description = req.Description
	job.BusinessData = datatypes.JSON(req.BusinessData)
	job.MarketTrends = datatypes.JSON(req.MarketTrends)
	job.FeedURLs = datatypes.JSON(feedURLBytes)
	job.Notify = req.Notify
	job.Timeout = req.Timeout

	// Replace existing schedules with new ones from the request.
	job.Schedules = []entity.GenerationSchedule{}
	for _, sDto := range req.Schedules {
		job.Schedules = append(job.Schedules, entity.GenerationSchedule{
			CronExpression: sDto.CronExpression,
			IsActive:       sDto.IsActive,
			JobID:          job.ID,
		})
	}

	// The repository's Update method handles the transaction.
	if err := s.jobRepo.Update(ctx, job); err != nil {
		s.logger.Error("Failed to update job", logger.ErrorField(err), logger.Field("job_id", id))
		return nil, err
	}

	s.logger.Info("Job updated successfully", logger.Field("job_id", id))
	return s.mapToJobResponse(job), nil
}

// mapToJobResponse maps an entity.GenerationJob to a dto.JobResponse.
func (s *jobService) mapToJobResponse(job *entity.GenerationJob) *dto.JobResponse {
	var feedURLs []string
	_ = json.Unmarshal(job.FeedURLs, &feedURLs)

	var schedules []dto.ScheduleResponseDTO
	for _, schedule := range job.Schedules {
		schedules = append(schedules, dto.ScheduleResponseDTO{
			ID:             schedule.ID,
			CronExpression: schedule.CronExpression,
			IsActive:       schedule.IsActive,
			NextExecution:  schedule.NextExecution,
			LastExecution:  schedule.LastExecution,
		})
	}

	return &dto.JobResponse{
		ID:           job.ID,
		Name:         job.Name,
		Description:  job.Description,
		BusinessData: json.RawMessage(job.BusinessData),
		MarketTrends: json.RawMessage(job.MarketTrends),
		FeedURLs:     feedURLs,
		Notify:       job.Notify,
		Timeout:      job.Timeout,
		Schedules:    schedules,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}
}
