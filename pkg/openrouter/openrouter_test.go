package openrouter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant-chat-service/pkg/openrouter"
)

func TestNew(t *testing.T) {
	t.Run("Requires API Key", func(t *testing.T) {
		if _, err := openrouter.New(openrouter.Config{}); err == nil {
			t.Error("expected error for missing API key")
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		c, err := openrouter.New(openrouter.Config{APIKey: "test-key"})
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		if c.Model() != openrouter.DefaultModel {
			t.Errorf("expected default model, got %s", c.Model())
		}
	})
}

func TestGenerateContent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("missing bearer auth, got %q", got)
			}
			if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
				t.Errorf("unexpected path %s", r.URL.Path)
			}

			var req openrouter.Request
			json.NewDecoder(r.Body).Decode(&req)
			if req.Model == "" {
				t.Error("client did not fill in the default model")
			}

			json.NewEncoder(w).Encode(openrouter.Response{
				Model: req.Model,
				Choices: []openrouter.Choice{
					{Message: openrouter.Message{Role: "assistant", Content: "Our wings are Rs. 450."}},
				},
				Usage: openrouter.Usage{TotalTokens: 21},
			})
		}))
		defer ts.Close()

		c, _ := openrouter.New(openrouter.Config{APIKey: "test-key"})
		c.SetBaseURL(ts.URL)

		resp, err := c.GenerateContent(context.Background(), &openrouter.Request{
			Messages: []openrouter.Message{{Role: "user", Content: "price of wings?"}},
		})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].Message.Content == "" {
			t.Errorf("unexpected response: %+v", resp)
		}
		if resp.Usage.TotalTokens != 21 {
			t.Errorf("expected 21 tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("API Error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limited","code":429}}`))
		}))
		defer ts.Close()

		c, _ := openrouter.New(openrouter.Config{APIKey: "test-key"})
		c.SetBaseURL(ts.URL)

		_, err := c.GenerateContent(context.Background(), &openrouter.Request{})
		if err == nil || !strings.Contains(err.Error(), "rate limited") {
			t.Errorf("expected rate limited error, got %v", err)
		}
	})

	t.Run("Context Cancellation", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer ts.Close()

		c, _ := openrouter.New(openrouter.Config{APIKey: "test-key"})
		c.SetBaseURL(ts.URL)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := c.GenerateContent(ctx, &openrouter.Request{}); err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}
