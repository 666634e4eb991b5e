package inbound

import (
	"context"

	"story-video-service/domain"
)

type StartGenerationParams struct {
	Request  domain.GenerationRequest
	RunID    string
	Progress func(event domain.ProgressEvent)
}

// GenerationPipelinePort runs the five pipeline stages strictly in sequence
// for one request and returns the compiled video, or an error with no video.
type GenerationPipelinePort interface {
	Generate(ctx context.Context, params StartGenerationParams) (*domain.CompiledVideo, error)
}
