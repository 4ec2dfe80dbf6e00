package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ironlady-ai-be/pkg/embedding"
	"ironlady-ai-be/pkg/store"
)

type stubEmbedder struct {
	vec []float32
	err error
}

func (s *stubEmbedder) Generate(text string, taskType string) (*embedding.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &embedding.Result{Values: s.vec}, nil
}

type stubSearcher struct {
	documents     []store.Document
	err           error
	gotLimit      int
	gotSessionNum *int
}

func (s *stubSearcher) SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int, sessionNumber *int) ([]store.Document, error) {
	s.gotLimit = limit
	s.gotSessionNum = sessionNumber
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.documents) {
		return s.documents[:limit], nil
	}
	return s.documents, nil
}

func TestSimilaritySearchPassesSessionFilter(t *testing.T) {
	searcher := &stubSearcher{documents: []store.Document{{ID: "1", Content: "x"}}}
	retriever := NewVectorRetriever(searcher, &stubEmbedder{vec: []float32{1, 0}})

	documents, err := retriever.SimilaritySearch(context.Background(), "session 3 recap", 8, &Filter{SessionNumber: 3})
	require.NoError(t, err)
	assert.Len(t, documents, 1)
	assert.Equal(t, 8, searcher.gotLimit)
	require.NotNil(t, searcher.gotSessionNum)
	assert.Equal(t, 3, *searcher.gotSessionNum)
}

func TestSimilaritySearchNoFilter(t *testing.T) {
	searcher := &stubSearcher{}
	retriever := NewVectorRetriever(searcher, &stubEmbedder{vec: []float32{1, 0}})

	_, err := retriever.SimilaritySearch(context.Background(), "q", 8, nil)
	require.NoError(t, err)
	assert.Nil(t, searcher.gotSessionNum)
}

func TestSimilaritySearchEmbeddingFailure(t *testing.T) {
	retriever := NewVectorRetriever(&stubSearcher{}, &stubEmbedder{err: errors.New("provider down")})

	_, err := retriever.SimilaritySearch(context.Background(), "q", 8, nil)
	assert.ErrorContains(t, err, "embed query")
}

func TestDiversitySearchFetchesPoolAndDownselects(t *testing.T) {
	pool := make([]store.Document, DiversityPool)
	for i := range pool {
		pool[i] = store.Document{
			ID:        fmt.Sprintf("doc-%d", i),
			Content:   "chunk",
			Embedding: []float32{float32(i), 1},
		}
	}
	searcher := &stubSearcher{documents: pool}
	retriever := NewVectorRetriever(searcher, &stubEmbedder{vec: []float32{0, 1}})

	documents, err := retriever.DiversitySearch(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, DiversityPool, searcher.gotLimit)
	assert.Len(t, documents, DefaultK)
}

func TestDiversitySearchSmallPoolReturnedAsIs(t *testing.T) {
	searcher := &stubSearcher{documents: []store.Document{
		{ID: "a", Embedding: []float32{1, 0}},
		{ID: "b", Embedding: []float32{0, 1}},
	}}
	retriever := NewVectorRetriever(searcher, &stubEmbedder{vec: []float32{1, 0}})

	documents, err := retriever.DiversitySearch(context.Background(), "q")
	require.NoError(t, err)
	assert.Len(t, documents, 2)
}

func TestMMRPrefersRelevantThenDiverse(t *testing.T) {
	query := []float32{1, 0}
	candidates := []store.Document{
		{ID: "near-duplicate-1", Embedding: []float32{1, 0}},
		{ID: "near-duplicate-2", Embedding: []float32{0.999, 0.01}},
		{ID: "orthogonal", Embedding: []float32{0, 1}},
	}

	selected := maximalMarginalRelevance(query, candidates, 2, 0.3)
	require.Len(t, selected, 2)
	assert.Equal(t, "near-duplicate-1", selected[0].ID)
	// second pick trades relevance for novelty
	assert.Equal(t, "orthogonal", selected[1].ID)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, cosineSimilarity(nil, []float32{1}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1}, []float32{1, 2}))
}
