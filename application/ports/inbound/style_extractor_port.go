package inbound

import (
	"context"

	"story-video-service/domain"
)

// StyleExtractorPort derives a short visual style descriptor from the
// enhanced prompt. On endpoint failure the result is an empty style with the
// fallback flag set; images then generate with no style prefix.
type StyleExtractorPort interface {
	Extract(ctx context.Context, enhancedPrompt string) domain.PromptResult
}
