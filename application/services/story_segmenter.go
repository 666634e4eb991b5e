package services

import (
	"context"
	"fmt"
	"strings"

	"story-video-service/application/ports/inbound"
	"story-video-service/application/ports/outbound"
)

// MaxSegments caps the number of story beats, and with it the number of
// image requests per run.
const MaxSegments = 5

type storySegmenter struct {
	logger        outbound.LoggerPort
	textGenerator outbound.TextGeneratorPort
}

func NewStorySegmenter(logger outbound.LoggerPort, textGenerator outbound.TextGeneratorPort) inbound.StorySegmenterPort {
	return &storySegmenter{
		logger:        logger,
		textGenerator: textGenerator,
	}
}

// Segment requests the short story and splits it on line boundaries,
// keeping the first five raw lines. Blank lines are preserved here: the
// caller filters them but subtitle timing still counts them.
func (s *storySegmenter) Segment(ctx context.Context, enhancedPrompt string) []string {
	message := fmt.Sprintf("Create a short story with a maximum of %d segments from the following prompt: %s",
		MaxSegments, enhancedPrompt)

	story, err := s.textGenerator.Complete(ctx, message)
	if err != nil {
		s.logger.Error(err, "story segmentation failed")
		return nil
	}

	lines := strings.Split(story, "\n")
	if len(lines) > MaxSegments {
		lines = lines[:MaxSegments]
	}
	return lines
}

// FilterSegments drops blank lines and re-truncates to the segment cap. The
// model's line breaks do not reliably yield five usable beats.
func FilterSegments(rawLines []string) []string {
	filtered := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		if strings.TrimSpace(line) != "" {
			filtered = append(filtered, line)
		}
	}
	if len(filtered) > MaxSegments {
		filtered = filtered[:MaxSegments]
	}
	return filtered
}
