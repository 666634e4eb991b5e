package inbound

import (
	"context"

	"story-video-service/domain"
)

type GenerateNarrationParams struct {
	Segments   []string
	Voice      domain.Voice
	OutputPath string
}

// NarrationGeneratorPort synthesizes the single narration track from all
// story segments joined by newlines. Fatal on failure or blank input.
type NarrationGeneratorPort interface {
	Generate(ctx context.Context, params GenerateNarrationParams) (*domain.NarrationAsset, error)
}
