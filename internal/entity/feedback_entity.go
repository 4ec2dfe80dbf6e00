package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	RatingPositive = "positive"
	RatingNegative = "negative"
)

type Feedback struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId   string
	MessageId   string
	Question    string
	Answer      string
	Rating      string
	UserComment *string
	CreatedAt   time.Time
}
