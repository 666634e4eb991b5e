package outbound

import "context"

// ImageGeneratorPort requests exactly one image for a prompt and returns a
// fetchable URL for it.
type ImageGeneratorPort interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
