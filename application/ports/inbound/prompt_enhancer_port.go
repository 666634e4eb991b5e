package inbound

import (
	"context"

	"story-video-service/domain"
)

// PromptEnhancerPort expands the raw theme into a richer narrative prompt.
// Never fails hard: on endpoint failure the result falls back to the
// unmodified theme.
type PromptEnhancerPort interface {
	Enhance(ctx context.Context, theme string) domain.PromptResult
}
