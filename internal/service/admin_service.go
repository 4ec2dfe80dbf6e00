package service

import (
	"context"

	"ironlady-ai-be/internal/dto"
	"ironlady-ai-be/internal/pkg/logger"
	"ironlady-ai-be/pkg/rag/metrics"
)

type IAdminService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	GetLogs(level string, limit, offset int) (*dto.GetLogsResponse, error)
}

type adminService struct {
	feedbackService IFeedbackService
	tracker         *metrics.Tracker
	log             logger.ILogger
}

func NewAdminService(feedbackService IFeedbackService, tracker *metrics.Tracker, log logger.ILogger) IAdminService {
	return &adminService{
		feedbackService: feedbackService,
		tracker:         tracker,
		log:             log,
	}
}

func (s *adminService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := s.feedbackService.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Feedback: *stats,
		Queries:  s.tracker.Snapshot(),
	}, nil
}

func (s *adminService) GetLogs(level string, limit, offset int) (*dto.GetLogsResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := s.log.GetLogs(level, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.GetLogsResponse{Logs: logs, Count: len(logs)}, nil
}
