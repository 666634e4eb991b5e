package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"story-video-service/application/ports/inbound"
	"story-video-service/application/ports/outbound"
	"story-video-service/domain"
)

// ErrEmptyNarrationInput is returned when the joined segment text is blank;
// no synthesis request is made in that case.
var ErrEmptyNarrationInput = errors.New("narration input text is empty")

type narrationGenerator struct {
	logger        outbound.LoggerPort
	synthesizer   outbound.SpeechSynthesizerPort
	totalDuration float64
}

func NewNarrationGenerator(logger outbound.LoggerPort, synthesizer outbound.SpeechSynthesizerPort,
	totalDuration float64) inbound.NarrationGeneratorPort {
	return &narrationGenerator{
		logger:        logger,
		synthesizer:   synthesizer,
		totalDuration: totalDuration,
	}
}

// Generate joins all segments with newlines, synthesizes one narration track
// with the lowercased voice token, and writes the audio bytes to the fixed
// output path. The asset carries the imposed policy duration, not the real
// length of the synthesized audio.
func (n *narrationGenerator) Generate(ctx context.Context, params inbound.GenerateNarrationParams) (*domain.NarrationAsset, error) {
	text := strings.Join(params.Segments, "\n")
	if strings.TrimSpace(text) == "" {
		n.logger.Error(ErrEmptyNarrationInput, "refusing to synthesize narration")
		return nil, ErrEmptyNarrationInput
	}

	audio, err := n.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
		Text:  text,
		Voice: params.Voice.Token(),
	})
	if err != nil {
		n.logger.ErrorWithFields(err, "speech synthesis failed", map[string]interface{}{
			"voice": params.Voice.Token(),
		})
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}

	if err := os.WriteFile(params.OutputPath, audio, 0644); err != nil {
		n.logger.Error(err, "failed to write narration file")
		return nil, fmt.Errorf("failed to write narration file: %w", err)
	}

	return &domain.NarrationAsset{
		SourceLocator:   params.OutputPath,
		DurationSeconds: n.totalDuration,
	}, nil
}
