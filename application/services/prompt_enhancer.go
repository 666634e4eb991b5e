package services

import (
	"context"
	"fmt"

	"story-video-service/application/ports/inbound"
	"story-video-service/application/ports/outbound"
	"story-video-service/domain"
)

type promptEnhancer struct {
	logger        outbound.LoggerPort
	textGenerator outbound.TextGeneratorPort
}

func NewPromptEnhancer(logger outbound.LoggerPort, textGenerator outbound.TextGeneratorPort) inbound.PromptEnhancerPort {
	return &promptEnhancer{
		logger:        logger,
		textGenerator: textGenerator,
	}
}

// Enhance asks the text endpoint to expand the theme into a richer prompt.
// Enhancement failure degrades quality instead of aborting: the original
// theme flows forward unchanged.
func (p *promptEnhancer) Enhance(ctx context.Context, theme string) domain.PromptResult {
	message := fmt.Sprintf("Enhance the following prompt for a story video: %s", theme)

	enhanced, err := p.textGenerator.Complete(ctx, message)
	if err != nil {
		p.logger.ErrorWithFields(err, "prompt enhancement failed, falling back to original theme", map[string]interface{}{
			"theme": theme,
		})
		return domain.PromptResult{Text: theme, Fallback: true}
	}

	return domain.PromptResult{Text: enhanced}
}
