package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"story-video-service/config"
)

func TestChatTextGenerator_Complete(t *testing.T) {
	var gotBody chatRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"an enhanced story prompt"}}]}`))
	}))
	defer server.Close()

	generator := NewChatTextGenerator(NewContentFetcher(nopLogger{}), &config.GptConfig{
		ApiUrl: server.URL,
		ApiKey: "test-key",
		Model:  "gpt-4o-mini",
	}, nopLogger{})

	text, err := generator.Complete(context.Background(), "Enhance this theme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "an enhanced story prompt" {
		t.Fatalf("unexpected completion: %q", text)
	}

	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotBody.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Role != "user" || gotBody.Messages[0].Content != "Enhance this theme" {
		t.Fatalf("unexpected messages: %+v", gotBody.Messages)
	}
}

func TestChatTextGenerator_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	generator := NewChatTextGenerator(NewContentFetcher(nopLogger{}), &config.GptConfig{
		ApiUrl: server.URL,
		ApiKey: "test-key",
		Model:  "gpt-4o-mini",
	}, nopLogger{})

	if _, err := generator.Complete(context.Background(), "hello"); err == nil {
		t.Fatal("expected an error for a non-OK status")
	}
}

func TestChatTextGenerator_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	generator := NewChatTextGenerator(NewContentFetcher(nopLogger{}), &config.GptConfig{
		ApiUrl: server.URL,
		ApiKey: "k",
		Model:  "m",
	}, nopLogger{})

	if _, err := generator.Complete(context.Background(), "hello"); err == nil {
		t.Fatal("expected an error for an empty choice list")
	}
}
