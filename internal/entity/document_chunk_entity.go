package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentChunk is one ingested piece of program content with its metadata
// and embedding vector. Chunks are written by the ingestion pipeline and
// read-only here.
type DocumentChunk struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Content   string
	Metadata  map[string]interface{}
	Embedding []float32
	CreatedAt time.Time
}
