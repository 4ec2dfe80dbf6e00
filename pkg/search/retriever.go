package search

import (
	"context"

	"ironlady-ai-be/pkg/store"
)

// Diversity retrieval parameters. A larger candidate pool is fetched and
// down-selected to balance relevance against redundancy.
const (
	DefaultK      = 8
	DiversityPool = 20
	// DiversityLambda weights relevance vs. novelty in MMR selection;
	// 1.0 is pure relevance, 0.0 is pure diversity.
	DiversityLambda = 0.7
)

// Filter narrows a similarity search by chunk metadata.
type Filter struct {
	SessionNumber int
}

// Retriever is the retrieval contract consumed by the answer pipeline.
// Results are ordered highest-relevance first.
type Retriever interface {
	// SimilaritySearch returns the k most similar chunks, optionally
	// constrained by filter.
	SimilaritySearch(ctx context.Context, query string, k int, filter *Filter) ([]store.Document, error)

	// DiversitySearch returns DefaultK chunks selected from a
	// DiversityPool-sized candidate set via maximal marginal relevance.
	DiversitySearch(ctx context.Context, query string) ([]store.Document, error)
}
