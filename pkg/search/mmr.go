package search

import (
	"math"

	"ironlady-ai-be/pkg/store"
)

// maximalMarginalRelevance down-selects k documents from a relevance-ranked
// candidate pool, trading relevance to the query against similarity to
// already-selected documents.
func maximalMarginalRelevance(queryVec []float32, candidates []store.Document, k int, lambda float64) []store.Document {
	if len(candidates) <= k {
		return candidates
	}

	selected := make([]store.Document, 0, k)
	remaining := make([]store.Document, len(candidates))
	copy(remaining, candidates)

	for len(selected) < k && len(remaining) > 0 {
		bestIdx := 0
		bestScore := math.Inf(-1)

		for i, cand := range remaining {
			relevance := cosineSimilarity(queryVec, cand.Embedding)

			redundancy := 0.0
			for _, sel := range selected {
				if sim := cosineSimilarity(cand.Embedding, sel.Embedding); sim > redundancy {
					redundancy = sim
				}
			}

			score := lambda*relevance - (1-lambda)*redundancy
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return selected
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
