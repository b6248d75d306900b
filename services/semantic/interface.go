package semantic

import "context"

// Embedder produces a fixed-length numeric vector for a text, deterministic
// for identical input within a model version.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}
