package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"story-video-service/application/ports/outbound"
	"story-video-service/config"
)

type speechApiRequest struct {
	Model          string  `json:"model"`
	Input          string  `json:"input"`
	Voice          string  `json:"voice"`
	Speed          float64 `json:"speed"`
	ResponseFormat string  `json:"response_format"`
}

type speechSynthesizer struct {
	ContentFetcher
	logger    outbound.LoggerPort
	ttsConfig *config.TtsConfig
}

func NewSpeechSynthesizer(contentFetcher ContentFetcher, ttsConfig *config.TtsConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &speechSynthesizer{
		ContentFetcher: contentFetcher,
		logger:         logger,
		ttsConfig:      ttsConfig,
	}
}

// Synthesize renders one mp3 narration at normal speed and returns the raw
// audio bytes. The voice must already be the lowercase wire token.
func (s *speechSynthesizer) Synthesize(ctx context.Context, synthReq outbound.SynthesizeSpeechRequest) ([]byte, error) {
	req, err := s.getRequest(ctx, synthReq)
	if err != nil {
		s.logger.Error(err, "failed to create the speech synthesis request")
		return nil, err
	}

	return s.FetchContent(req)
}

func (s *speechSynthesizer) getRequest(ctx context.Context, synthReq outbound.SynthesizeSpeechRequest) (*http.Request, error) {
	reqBody := speechApiRequest{
		Model:          s.ttsConfig.Model,
		Input:          synthReq.Text,
		Voice:          synthReq.Voice,
		Speed:          1,
		ResponseFormat: "mp3",
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.ttsConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+s.ttsConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
