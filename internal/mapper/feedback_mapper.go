package mapper

import (
	"ironlady-ai-be/internal/entity"
	"ironlady-ai-be/internal/model"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) ToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}
	return &entity.Feedback{
		Id:          f.Id,
		SessionId:   f.SessionId,
		MessageId:   f.MessageId,
		Question:    f.Question,
		Answer:      f.Answer,
		Rating:      f.Rating,
		UserComment: f.UserComment,
		CreatedAt:   f.CreatedAt,
	}
}

func (m *FeedbackMapper) ToModel(f *entity.Feedback) *model.Feedback {
	if f == nil {
		return nil
	}
	return &model.Feedback{
		Id:          f.Id,
		SessionId:   f.SessionId,
		MessageId:   f.MessageId,
		Question:    f.Question,
		Answer:      f.Answer,
		Rating:      f.Rating,
		UserComment: f.UserComment,
		CreatedAt:   f.CreatedAt,
	}
}
