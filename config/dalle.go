package config

import (
	"fmt"
	"os"
)

type DalleConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
	Size   string
}

func GetDalleConfig() (*DalleConfig, error) {
	apiUrl := os.Getenv("DALLE_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("DALLE_API_URL must be set")
	}
	apiKey := os.Getenv("DALLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("DALLE_API_KEY must be set")
	}
	model := os.Getenv("DALLE_MODEL")
	if model == "" {
		return nil, fmt.Errorf("DALLE_MODEL must be set")
	}
	size := os.Getenv("DALLE_SIZE")
	if size == "" {
		size = "1024x1024"
	}

	return &DalleConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
		Model:  model,
		Size:   size,
	}, nil
}
