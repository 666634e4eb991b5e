package outbound

import "context"

type PublishVideoRequest struct {
	LocalPath string
	RunID     string
}

type PublishVideoResponse struct {
	Key    string
	URL    string
	Region string
}

// VideoPublisherPort persists a compiled video to the object store. Used only
// at the pipeline's edges; upload failure never invalidates the local video.
type VideoPublisherPort interface {
	Publish(ctx context.Context, req PublishVideoRequest) (*PublishVideoResponse, error)
	Delete(ctx context.Context, key string) error
}
