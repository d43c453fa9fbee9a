package port

import (
	"context"

	"clawpic/internal/core/domain"
)

type ImageGenerator interface {
	// Generate performs a single generation or edit call and returns the
	// decoded result. Implementations guard against empty image sequences.
	Generate(ctx context.Context, request domain.GenerationRequest) (*domain.GenerationResult, error)
}
