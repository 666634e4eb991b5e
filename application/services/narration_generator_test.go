package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"story-video-service/application/ports/inbound"
	"story-video-service/domain"
)

func TestNarrationGenerator_Generate(t *testing.T) {
	synth := &fakeSynthesizer{}
	generator := NewNarrationGenerator(nopLogger{}, synth, 60)

	outPath := filepath.Join(t.TempDir(), NarrationFileName)
	asset, err := generator.Generate(context.Background(), inbound.GenerateNarrationParams{
		Segments:   []string{"first beat", "second beat"},
		Voice:      domain.VoiceOnyx,
		OutputPath: outPath,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(synth.calls) != 1 {
		t.Fatalf("expected one synthesis call, got %d", len(synth.calls))
	}
	if synth.calls[0].Voice != "onyx" {
		t.Fatalf("voice must be lowercased for the endpoint, got %q", synth.calls[0].Voice)
	}
	if synth.calls[0].Text != "first beat\nsecond beat" {
		t.Fatalf("segments must be joined with newlines, got %q", synth.calls[0].Text)
	}

	written, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("narration file missing: %v", err)
	}
	if string(written) != "mp3-bytes" {
		t.Fatalf("unexpected file content: %q", written)
	}

	if asset.DurationSeconds != 60 {
		t.Fatalf("asset must carry the imposed duration, got %f", asset.DurationSeconds)
	}
	if asset.SourceLocator != outPath {
		t.Fatalf("unexpected locator: %q", asset.SourceLocator)
	}
}

func TestNarrationGenerator_RefusesBlankInput(t *testing.T) {
	synth := &fakeSynthesizer{}
	generator := NewNarrationGenerator(nopLogger{}, synth, 60)

	_, err := generator.Generate(context.Background(), inbound.GenerateNarrationParams{
		Segments:   []string{"  ", ""},
		Voice:      domain.VoiceAlloy,
		OutputPath: filepath.Join(t.TempDir(), NarrationFileName),
	})
	if !errors.Is(err, ErrEmptyNarrationInput) {
		t.Fatalf("expected ErrEmptyNarrationInput, got %v", err)
	}
	if len(synth.calls) != 0 {
		t.Fatal("no synthesis request may be sent for blank input")
	}
}

func TestNarrationGenerator_SynthesisFailureIsFatal(t *testing.T) {
	synth := &fakeSynthesizer{fail: true}
	generator := NewNarrationGenerator(nopLogger{}, synth, 60)

	_, err := generator.Generate(context.Background(), inbound.GenerateNarrationParams{
		Segments:   []string{"a beat"},
		Voice:      domain.VoiceNova,
		OutputPath: filepath.Join(t.TempDir(), NarrationFileName),
	})
	if err == nil {
		t.Fatal("expected an error")
	}
}
