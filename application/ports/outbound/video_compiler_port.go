package outbound

import (
	"context"

	"story-video-service/domain"
)

type CompileVideoRequest struct {
	Images        []domain.ImageAsset
	NarrationPath string
	Cues          []domain.SubtitleCue
	Font          domain.Font
	// TotalDurationSeconds is the imposed length of the final video. Frames
	// split it evenly and the audio track is clipped or padded to match.
	TotalDurationSeconds float64
	OutputPath           string
}

type VideoCompilerPort interface {
	Compile(ctx context.Context, req CompileVideoRequest) (string, error)
}
