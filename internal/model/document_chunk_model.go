package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type DocumentChunk struct {
	Id        uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content   string             `gorm:"type:text;not null"`
	Metadata  datatypes.JSONMap  `gorm:"type:jsonb"`
	Embedding pgvector.Vector    `gorm:"type:vector(768)"` // text-embedding-004 / nomic-embed-text dimensions
	CreatedAt time.Time          `gorm:"autoCreateTime"`
}

func (DocumentChunk) TableName() string {
	return "document_chunks"
}
