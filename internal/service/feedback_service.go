package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"ironlady-ai-be/internal/dto"
	"ironlady-ai-be/internal/entity"
	"ironlady-ai-be/internal/pkg/logger"
	"ironlady-ai-be/internal/repository/specification"
	"ironlady-ai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFeedbackService interface {
	Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error)
	Stats(ctx context.Context) (*dto.FeedbackStatsResponse, error)
	Recent(ctx context.Context, limit int) ([]*dto.FeedbackItemResponse, error)
	BySession(ctx context.Context, sessionID string) ([]*dto.FeedbackItemResponse, error)
}

type feedbackService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	log        logger.ILogger
}

func NewFeedbackService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	log logger.ILogger,
) IFeedbackService {
	return &feedbackService{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        log,
	}
}

func (s *feedbackService) Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feedback := &entity.Feedback{
		Id:        uuid.New(),
		SessionId: req.SessionId,
		MessageId: req.MessageId,
		Question:  req.Question,
		Answer:    req.Answer,
		Rating:    req.Rating,
		CreatedAt: time.Now(),
	}
	if req.UserComment != "" {
		comment := req.UserComment
		feedback.UserComment = &comment
	}

	if err := uow.FeedbackRepository().Create(ctx, feedback); err != nil {
		return nil, err
	}

	event := dto.FeedbackSubmittedEvent{
		FeedbackId: feedback.Id,
		SessionId:  feedback.SessionId,
		Rating:     feedback.Rating,
		CreatedAt:  feedback.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err == nil {
		err = s.publisher.Publish(ctx, payload)
	}
	if err != nil {
		// Feedback is already stored; the event stream is best effort.
		s.log.Warn("feedback", "failed to publish feedback event", map[string]interface{}{
			"feedback_id": feedback.Id.String(),
			"error":       err.Error(),
		})
	}

	return &dto.SubmitFeedbackResponse{Id: feedback.Id}, nil
}

func (s *feedbackService) Stats(ctx context.Context) (*dto.FeedbackStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.FeedbackRepository()

	total, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	positive, err := repo.Count(ctx, specification.ByRating{Rating: entity.RatingPositive})
	if err != nil {
		return nil, err
	}

	stats := &dto.FeedbackStatsResponse{
		Total:    total,
		Positive: positive,
		Negative: total - positive,
	}
	if total > 0 {
		pct := float64(positive) / float64(total) * 100
		stats.PositivePercentage = math.Round(pct*100) / 100
	}
	return stats, nil
}

func (s *feedbackService) Recent(ctx context.Context, limit int) ([]*dto.FeedbackItemResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.FeedbackRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}
	return toFeedbackItems(items), nil
}

func (s *feedbackService) BySession(ctx context.Context, sessionID string) ([]*dto.FeedbackItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.FeedbackRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionID},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	return toFeedbackItems(items), nil
}

func toFeedbackItems(items []*entity.Feedback) []*dto.FeedbackItemResponse {
	result := make([]*dto.FeedbackItemResponse, len(items))
	for i, item := range items {
		res := &dto.FeedbackItemResponse{
			Id:        item.Id,
			SessionId: item.SessionId,
			MessageId: item.MessageId,
			Question:  item.Question,
			Answer:    item.Answer,
			Rating:    item.Rating,
			CreatedAt: item.CreatedAt,
		}
		if item.UserComment != nil {
			res.UserComment = *item.UserComment
		}
		result[i] = res
	}
	return result
}
