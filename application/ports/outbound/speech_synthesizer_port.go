package outbound

import "context"

type SynthesizeSpeechRequest struct {
	Text string
	// Voice is the wire token, already lowercased by the caller.
	Voice string
}

// SpeechSynthesizerPort renders one narration track and returns the raw
// audio bytes.
type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) ([]byte, error)
}
