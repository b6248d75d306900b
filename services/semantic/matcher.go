package semantic

import (
	"context"
	"fmt"
	"math"
)

// DefaultThreshold is the reference similarity cutoff for purpose
// compatibility. Scores strictly above it classify as similar.
const DefaultThreshold = 0.75

// PurposeMatcher scores two purpose strings by cosine similarity of their
// embeddings and classifies them against a fixed threshold.
type PurposeMatcher struct {
	Embedder  Embedder
	Threshold float64
}

// NewPurposeMatcher constructs a matcher; a non-positive threshold falls back
// to DefaultThreshold.
func NewPurposeMatcher(embedder Embedder, threshold float64) *PurposeMatcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &PurposeMatcher{Embedder: embedder, Threshold: threshold}
}

// Similar embeds both purposes and returns whether their cosine similarity
// exceeds the threshold, along with the score in [-1, 1].
func (m *PurposeMatcher) Similar(ctx context.Context, purposeA, purposeB string) (bool, float64, error) {
	embA, err := m.Embedder.Embed(ctx, purposeA)
	if err != nil {
		return false, 0, fmt.Errorf("embedding purpose %q: %w", purposeA, err)
	}
	embB, err := m.Embedder.Embed(ctx, purposeB)
	if err != nil {
		return false, 0, fmt.Errorf("embedding purpose %q: %w", purposeB, err)
	}
	score := CosineSimilarity(embA, embB)
	return score > m.Threshold, score, nil
}

// CosineSimilarity returns the cosine of the angle between two vectors.
// Mismatched lengths or zero vectors score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
