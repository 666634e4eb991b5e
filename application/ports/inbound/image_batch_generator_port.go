package inbound

import (
	"context"

	"story-video-service/domain"
)

// ImageBatchGeneratorPort generates one image per story segment, in segment
// order. The first failure stops the batch: the returned slice holds the
// assets accumulated before the failing index and err reports the failure.
// A non-empty partial slice with a non-nil error is a valid outcome.
type ImageBatchGeneratorPort interface {
	Generate(ctx context.Context, plan domain.StoryPlan) ([]domain.ImageAsset, error)
}
