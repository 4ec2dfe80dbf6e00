package bootstrap

import (
	"context"

	"ironlady-ai-be/internal/mapper"
	"ironlady-ai-be/internal/repository/unitofwork"
	"ironlady-ai-be/pkg/store"
)

// chunkSearcher adapts the pgvector-backed chunk repository to the
// retrieval layer, which only speaks store.Document.
type chunkSearcher struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.DocumentChunkMapper
}

func newChunkSearcher(uowFactory unitofwork.RepositoryFactory) *chunkSearcher {
	return &chunkSearcher{
		uowFactory: uowFactory,
		mapper:     mapper.NewDocumentChunkMapper(),
	}
}

func (s *chunkSearcher) SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int, sessionNumber *int) ([]store.Document, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	scored, err := uow.DocumentChunkRepository().SearchSimilarWithScore(ctx, queryEmbedding, limit, sessionNumber)
	if err != nil {
		return nil, err
	}

	docs := make([]store.Document, len(scored))
	for i, sc := range scored {
		docs[i] = s.mapper.ToDocument(sc.Chunk, sc.Similarity)
	}
	return docs, nil
}
