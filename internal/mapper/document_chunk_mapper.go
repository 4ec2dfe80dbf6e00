package mapper

import (
	"ironlady-ai-be/internal/entity"
	"ironlady-ai-be/internal/model"
	"ironlady-ai-be/pkg/store"
)

type DocumentChunkMapper struct{}

func NewDocumentChunkMapper() *DocumentChunkMapper {
	return &DocumentChunkMapper{}
}

func (m *DocumentChunkMapper) ToEntity(c *model.DocumentChunk) *entity.DocumentChunk {
	if c == nil {
		return nil
	}
	return &entity.DocumentChunk{
		Id:        c.Id,
		Content:   c.Content,
		Metadata:  map[string]interface{}(c.Metadata),
		Embedding: c.Embedding.Slice(),
		CreatedAt: c.CreatedAt,
	}
}

// ToDocument converts a chunk plus its similarity score into the retrieval
// document consumed by the answer pipeline.
func (m *DocumentChunkMapper) ToDocument(c *entity.DocumentChunk, similarity float64) store.Document {
	if c == nil {
		return store.Document{}
	}
	return store.Document{
		ID:        c.Id.String(),
		Content:   c.Content,
		Score:     float32(similarity),
		Metadata:  c.Metadata,
		Embedding: c.Embedding,
	}
}
