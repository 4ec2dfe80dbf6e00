package contract

import (
	"context"

	"ironlady-ai-be/internal/entity"
	"ironlady-ai-be/internal/repository/specification"
)

// ScoredDocumentChunk wraps DocumentChunk with its similarity score
type ScoredDocumentChunk struct {
	Chunk      *entity.DocumentChunk
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type DocumentChunkRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns the nearest chunks by cosine distance,
	// highest similarity first, optionally constrained to one session.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, sessionNumber *int) ([]*ScoredDocumentChunk, error)
}
