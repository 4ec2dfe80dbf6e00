package model

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId   string    `gorm:"type:varchar(64);not null;index"`
	MessageId   string    `gorm:"type:varchar(64);index"`
	Question    string    `gorm:"type:text;not null"`
	Answer      string    `gorm:"type:text;not null"`
	Rating      string    `gorm:"type:varchar(16);not null;index"` // "positive" | "negative"
	UserComment *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (Feedback) TableName() string {
	return "feedback"
}
