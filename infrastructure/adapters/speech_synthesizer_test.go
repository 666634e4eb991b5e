package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"story-video-service/application/ports/outbound"
	"story-video-service/config"
)

func TestSpeechSynthesizer_Synthesize(t *testing.T) {
	var gotBody speechApiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		_, _ = w.Write([]byte{0xff, 0xfb, 0x90, 0x00})
	}))
	defer server.Close()

	synthesizer := NewSpeechSynthesizer(NewContentFetcher(nopLogger{}), &config.TtsConfig{
		ApiUrl: server.URL,
		ApiKey: "test-key",
		Model:  "tts-1",
	}, nopLogger{})

	audio, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:  "line one\nline two",
		Voice: "onyx",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(audio, []byte{0xff, 0xfb, 0x90, 0x00}) {
		t.Fatalf("unexpected audio payload: %v", audio)
	}

	if gotBody.Voice != "onyx" {
		t.Fatalf("unexpected voice token: %q", gotBody.Voice)
	}
	if gotBody.Speed != 1 {
		t.Fatalf("speed must be 1, got %f", gotBody.Speed)
	}
	if gotBody.ResponseFormat != "mp3" {
		t.Fatalf("format must be mp3, got %q", gotBody.ResponseFormat)
	}
	if gotBody.Input != "line one\nline two" {
		t.Fatalf("unexpected input text: %q", gotBody.Input)
	}
}

func TestSpeechSynthesizer_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad voice", http.StatusBadRequest)
	}))
	defer server.Close()

	synthesizer := NewSpeechSynthesizer(NewContentFetcher(nopLogger{}), &config.TtsConfig{
		ApiUrl: server.URL,
		ApiKey: "k",
		Model:  "tts-1",
	}, nopLogger{})

	_, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{Text: "x", Voice: "onyx"})
	if err == nil {
		t.Fatal("expected an error for a non-OK status")
	}
}
