package inbound

import "context"

// StorySegmenterPort asks for a short story with at most five segments and
// returns the first five raw output lines, blanks included. On endpoint
// failure it returns an empty slice; the pipeline treats zero usable
// segments as a hard stop.
type StorySegmenterPort interface {
	Segment(ctx context.Context, enhancedPrompt string) []string
}
