package outbound

import "context"

// TextGeneratorPort is a single-shot chat completion: one user message in,
// the generated text verbatim out.
type TextGeneratorPort interface {
	Complete(ctx context.Context, message string) (string, error)
}
