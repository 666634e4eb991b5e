package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"story-video-service/application/ports/outbound"
	"story-video-service/config"
)

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatTextGenerator struct {
	ContentFetcher
	logger    outbound.LoggerPort
	gptConfig *config.GptConfig
}

// NewChatTextGenerator is the single-shot chat completion adapter used by
// all three text stages.
func NewChatTextGenerator(contentFetcher ContentFetcher, gptConfig *config.GptConfig, logger outbound.LoggerPort) outbound.TextGeneratorPort {
	return &chatTextGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		gptConfig:      gptConfig,
	}
}

func (g *chatTextGenerator) Complete(ctx context.Context, message string) (string, error) {
	req, err := g.getRequest(ctx, message)
	if err != nil {
		g.logger.Error(err, "failed to create the chat completion request")
		return "", err
	}

	rawRes, err := g.FetchContent(req)
	if err != nil {
		return "", err
	}

	var res chatResponse
	if err := json.Unmarshal(rawRes, &res); err != nil {
		g.logger.Error(err, "failed to unmarshal the chat completion response")
		return "", err
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}

func (g *chatTextGenerator) getRequest(ctx context.Context, message string) (*http.Request, error) {
	reqBody := chatRequest{
		Model: g.gptConfig.Model,
		Messages: []chatMessage{
			{Role: "user", Content: message},
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.gptConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+g.gptConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
