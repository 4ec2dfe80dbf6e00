package service

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"ironlady-ai-be/internal/dto"
	"ironlady-ai-be/internal/entity"
	"ironlady-ai-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the feedback topic and writes each event to the
// isolated feedback log, so the feedback trail survives app log rotation.
type consumerService struct {
	topicName   string
	pubSub      *gochannel.GoChannel
	feedbackLog logger.ILogger
	appLog      logger.ILogger

	negativeCount atomic.Int64
}

func NewConsumerService(
	topicName string,
	pubSub *gochannel.GoChannel,
	feedbackLog logger.ILogger,
	appLog logger.ILogger,
) IConsumerService {
	return &consumerService{
		topicName:   topicName,
		pubSub:      pubSub,
		feedbackLog: feedbackLog,
		appLog:      appLog,
	}
}

func (s *consumerService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	s.appLog.Info("consumer", "feedback consumer started", map[string]interface{}{
		"topic": s.topicName,
	})

	for msg := range messages {
		s.handle(msg)
		msg.Ack()
	}
	return nil
}

func (s *consumerService) handle(msg *message.Message) {
	var event dto.FeedbackSubmittedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		s.appLog.Warn("consumer", "failed to decode feedback event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	details := map[string]interface{}{
		"feedback_id": event.FeedbackId.String(),
		"session_id":  event.SessionId,
		"rating":      event.Rating,
		"created_at":  event.CreatedAt,
	}
	s.feedbackLog.Info("feedback", "feedback received", details)

	if event.Rating == entity.RatingNegative {
		details["negative_total"] = s.negativeCount.Add(1)
		s.appLog.Warn("consumer", "negative feedback received", details)
	}
}
