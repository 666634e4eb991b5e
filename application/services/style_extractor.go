package services

import (
	"context"
	"fmt"

	"story-video-service/application/ports/inbound"
	"story-video-service/application/ports/outbound"
	"story-video-service/domain"
)

type styleExtractor struct {
	logger        outbound.LoggerPort
	textGenerator outbound.TextGeneratorPort
}

func NewStyleExtractor(logger outbound.LoggerPort, textGenerator outbound.TextGeneratorPort) inbound.StyleExtractorPort {
	return &styleExtractor{
		logger:        logger,
		textGenerator: textGenerator,
	}
}

// Extract derives a reusable style descriptor that is prepended to every
// image prompt so all images share a consistent look. On failure the style
// is empty and images generate with no prefix.
func (s *styleExtractor) Extract(ctx context.Context, enhancedPrompt string) domain.PromptResult {
	message := fmt.Sprintf(
		"Describe the visual style and setting of the following story in a short, comma-separated list of elements, suitable as a prefix for image generation prompts: %s",
		enhancedPrompt)

	style, err := s.textGenerator.Complete(ctx, message)
	if err != nil {
		s.logger.Error(err, "style extraction failed, continuing without a style prefix")
		return domain.PromptResult{Text: "", Fallback: true}
	}

	return domain.PromptResult{Text: style}
}
