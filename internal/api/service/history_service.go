package service

import (
	"context"

	"golang-monetization-engine/internal/api/dto"
	"golang-monetization-engine/internal/api/repository"
	"golang-monetization-engine/internal/entity"
	"golang-monetization-engine/pkg/logger"
)

// HistoryService defines the interface for reading generation history.
type HistoryService interface {
	GetHistoryByID(ctx context.Context, id uint) (*dto.HistoryResponse, error)
	GetAllHistories(ctx context.Context) ([]*dto.HistoryResponse, error)
	GetHistoriesByJobID(ctx context.Context, jobID uint) ([]*dto.HistoryResponse, error)
}

// NewHistoryService creates a new generation history service.
func NewHistoryService(historyRepo repository.HistoryRepository, logger *logger.Logger) HistoryService {
	return &historyService{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

type historyService struct {
	historyRepo repository.HistoryRepository
	logger      *logger.Logger
}

// GetHistoryByID retrieves a generation history record by its ID.
func (s *historyService) GetHistoryByID(ctx context.Context, id uint) (*dto.HistoryResponse, error) {
	history, err := s.historyRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to find generation history", logger.ErrorField(err), logger.Field("history_id", id))
		return nil, err
	}
	return s.mapToHistoryResponse(history), nil
}

// GetAllHistories retrieves all generation history records.
func (s *historyService) GetAllHistories(ctx context.Context) ([]*dto.HistoryResponse, error) {
	histories, err := s.historyRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get all generation histories", logger.ErrorField(err))
		return nil, err
	}

	var historyResponses []*dto.HistoryResponse
	for _, history := range histories {
		historyResponses = append(historyResponses, s.mapToHistoryResponse(&history))
	}

	return historyResponses, nil
}

// GetHistoriesByJobID retrieves all generation history records for a specific job.
func (s *historyService) GetHistoriesByJobID(ctx context.Context, jobID uint) ([]*dto.HistoryResponse, error) {
	histories, err := s.historyRepo.FindAllByJobID(ctx, jobID)
	if err != nil {
		s.logger.Error("Failed to get generation histories by job ID", logger.ErrorField(err), logger.Field("job_id", jobID))
		return nil, err
	}

	var historyResponses []*dto.HistoryResponse
	for _, history := range histories {
		historyResponses = append(historyResponses, s.mapToHistoryResponse(&history))
	}

	return historyResponses, nil
}

// mapToHistoryResponse maps an entity.GenerationHistory to a dto.HistoryResponse.
func (s *historyService) mapToHistoryResponse(history *entity.GenerationHistory) *dto.HistoryResponse {
	return &dto.HistoryResponse{
		ID:            history.ID,
		JobID:         history.JobID,
		ScheduleID:    history.ScheduleID,
		Status:        string(history.Status),
		StrategyCount: history.StrategyCount,
		Output:        history.Output,
		ErrorMessage:  history.ErrorMessage,
		StartedAt:     history.StartedAt,
		CompletedAt:   history.CompletedAt,
	}
}
