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

type dalleApiRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	Number         int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type dalleApiResponse struct {
	Data []struct {
		Url string `json:"url"`
	} `json:"data"`
}

type dalleImageGenerator struct {
	ContentFetcher
	logger      outbound.LoggerPort
	dalleConfig *config.DalleConfig
}

func NewDalleImageGenerator(contentFetcher ContentFetcher, dalleConfig *config.DalleConfig, logger outbound.LoggerPort) outbound.ImageGeneratorPort {
	return &dalleImageGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		dalleConfig:    dalleConfig,
	}
}

// Generate requests exactly one image (the endpoint only supports n=1) at
// the configured resolution and returns its fetchable URL.
func (i *dalleImageGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req, err := i.getRequest(ctx, prompt)
	if err != nil {
		i.logger.Error(err, "failed to create the image generation request")
		return "", err
	}

	rawRes, err := i.FetchContent(req)
	if err != nil {
		return "", err
	}

	var dalleRes dalleApiResponse
	if err := json.Unmarshal(rawRes, &dalleRes); err != nil {
		i.logger.Error(err, "failed to unmarshal the image generation response")
		return "", err
	}
	if len(dalleRes.Data) == 0 {
		return "", fmt.Errorf("image generation returned no data")
	}

	return dalleRes.Data[0].Url, nil
}

func (i *dalleImageGenerator) getRequest(ctx context.Context, prompt string) (*http.Request, error) {
	reqBody := dalleApiRequest{
		Model:          i.dalleConfig.Model,
		Prompt:         prompt,
		Number:         1,
		Size:           i.dalleConfig.Size,
		ResponseFormat: "url",
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.dalleConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+i.dalleConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
