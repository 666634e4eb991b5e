package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"story-video-service/application/ports/outbound"
)

// ContentFetcher is the shared HTTP transport for every outbound REST call
// and for pulling generated media back down from the returned URLs.
type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
	Download(ctx context.Context, url string, destPath string) error
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: &http.Client{},
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL.String(),
		})
		return nil, err
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Error(err, "failed to close the response body")
		}
	}(res.Body)

	if res.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(res.Body)
		c.logger.ErrorWithFields(nil, "HTTP request returned non-OK status code", map[string]interface{}{
			"method":  req.Method,
			"url":     req.URL.String(),
			"status":  res.StatusCode,
			"message": string(payload),
		})
		return nil, fmt.Errorf("HTTP request returned non-OK status code: %d", res.StatusCode)
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.Error(err, "failed to read the response body")
		return nil, err
	}

	return payload, nil
}

// Download fetches a URL into a local file.
func (c *contentFetcher) Download(ctx context.Context, url string, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	payload, err := c.FetchContent(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}

	return os.WriteFile(destPath, payload, 0644)
}
