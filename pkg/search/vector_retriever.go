package search

import (
	"context"
	"fmt"

	"ironlady-ai-be/pkg/embedding"
	"ironlady-ai-be/pkg/store"
)

// ChunkSearcher is the storage-side contract: nearest-neighbor search over
// ingested content chunks by embedding vector. Implemented by the pgvector
// repository.
type ChunkSearcher interface {
	SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int, sessionNumber *int) ([]store.Document, error)
}

// VectorRetriever embeds the query and searches the chunk store, with MMR
// down-selection for the diversity path.
type VectorRetriever struct {
	searcher ChunkSearcher
	embedder embedding.Provider
}

var _ Retriever = &VectorRetriever{}

func NewVectorRetriever(searcher ChunkSearcher, embedder embedding.Provider) *VectorRetriever {
	return &VectorRetriever{
		searcher: searcher,
		embedder: embedder,
	}
}

func (r *VectorRetriever) embedQuery(query string) ([]float32, error) {
	result, err := r.embedder.Generate(query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return result.Values, nil
}

func (r *VectorRetriever) SimilaritySearch(ctx context.Context, query string, k int, filter *Filter) ([]store.Document, error) {
	queryVec, err := r.embedQuery(query)
	if err != nil {
		return nil, err
	}

	var sessionNumber *int
	if filter != nil && filter.SessionNumber > 0 {
		sessionNumber = &filter.SessionNumber
	}

	documents, err := r.searcher.SearchSimilar(ctx, queryVec, k, sessionNumber)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	return documents, nil
}

func (r *VectorRetriever) DiversitySearch(ctx context.Context, query string) ([]store.Document, error) {
	queryVec, err := r.embedQuery(query)
	if err != nil {
		return nil, err
	}

	pool, err := r.searcher.SearchSimilar(ctx, queryVec, DiversityPool, nil)
	if err != nil {
		return nil, fmt.Errorf("diversity search: %w", err)
	}

	return maximalMarginalRelevance(queryVec, pool, DefaultK, DiversityLambda), nil
}
