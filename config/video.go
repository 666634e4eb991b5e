package config

import (
	"fmt"
	"os"
	"strconv"
)

type VideoConfig struct {
	// TotalDurationSeconds is the imposed wall-clock length of every video.
	// The narration's real length is never measured against it.
	TotalDurationSeconds float64
	WorkDir              string
	// ImageConcurrency bounds the image fan-out. 1 keeps the original
	// strictly sequential behavior.
	ImageConcurrency int
}

const defaultTotalDurationSeconds = 60

func GetVideoConfig() (*VideoConfig, error) {
	cfg := &VideoConfig{
		TotalDurationSeconds: defaultTotalDurationSeconds,
		WorkDir:              os.TempDir(),
		ImageConcurrency:     1,
	}

	if raw := os.Getenv("VIDEO_TOTAL_SECONDS"); raw != "" {
		seconds, err := strconv.ParseFloat(raw, 64)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("VIDEO_TOTAL_SECONDS must be a positive number")
		}
		cfg.TotalDurationSeconds = seconds
	}

	if dir := os.Getenv("VIDEO_WORKDIR"); dir != "" {
		cfg.WorkDir = dir
	}

	if raw := os.Getenv("IMAGE_CONCURRENCY"); raw != "" {
		concurrency, err := strconv.Atoi(raw)
		if err != nil || concurrency < 1 {
			return nil, fmt.Errorf("IMAGE_CONCURRENCY must be a positive integer")
		}
		cfg.ImageConcurrency = concurrency
	}

	return cfg, nil
}
