package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitFeedbackRequest struct {
	SessionId   string `json:"session_id" validate:"required"`
	MessageId   string `json:"message_id"`
	Question    string `json:"question" validate:"required"`
	Answer      string `json:"answer" validate:"required"`
	Rating      string `json:"rating" validate:"required,oneof=positive negative"`
	UserComment string `json:"user_comment"`
}

type SubmitFeedbackResponse struct {
	Id uuid.UUID `json:"id"`
}

type FeedbackItemResponse struct {
	Id          uuid.UUID `json:"id"`
	SessionId   string    `json:"session_id"`
	MessageId   string    `json:"message_id,omitempty"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Rating      string    `json:"rating"`
	UserComment string    `json:"user_comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type FeedbackStatsResponse struct {
	Total              int64   `json:"total"`
	Positive           int64   `json:"positive"`
	Negative           int64   `json:"negative"`
	PositivePercentage float64 `json:"positive_percentage"`
}

// FeedbackSubmittedEvent is the payload published on the feedback topic.
type FeedbackSubmittedEvent struct {
	FeedbackId uuid.UUID `json:"feedback_id"`
	SessionId  string    `json:"session_id"`
	Rating     string    `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}
