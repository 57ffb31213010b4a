package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postforge/config"
)

func newTestClient(t *testing.T, upstream http.HandlerFunc) (*GatewayClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Gateway.URL = server.URL
	cfg.Gateway.ApiKey = "test-key"
	cfg.Gateway.Model = "test-model"
	cfg.Gateway.ImageModel = "test-image-model"
	return NewGatewayClient(cfg, zerolog.Nop()), server
}

func completionBody(content string) string {
	return `{"choices": [{"message": {"role": "assistant", "content": ` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGatewayCompleteSuccess(t *testing.T) {
	var captured struct {
		Model       string `json:"model"`
		Temperature float64
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("hello from the model")))
	})

	reply, err := client.Complete(context.Background(), "system text", "user text", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "hello from the model", reply)
	assert.Equal(t, "test-model", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
}

func TestGatewayRateLimitMapsToErrRateLimited(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Complete(context.Background(), "s", "u", 0.7)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGatewayPaymentRequiredMapsToErrPaymentRequired(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	})

	_, err := client.Complete(context.Background(), "s", "u", 0.7)
	assert.ErrorIs(t, err, ErrPaymentRequired)
}

func TestGatewayOtherStatusCollapsesToErrUpstream(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error": {"message": "internal provider detail"}}`))
	})

	_, err := client.Complete(context.Background(), "s", "u", 0.7)
	assert.ErrorIs(t, err, ErrUpstream)
	// Upstream detail must never leak into the error.
	assert.NotContains(t, err.Error(), "internal provider detail")
}

func TestGatewayNetworkFailureCollapsesToErrUpstream(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.Complete(context.Background(), "s", "u", 0.7)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGatewayMissingAPIKeyFailsWithoutCalling(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	client.apiKey = ""

	_, err := client.Complete(context.Background(), "s", "u", 0.7)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, 0, calls)
}

func TestGatewayGenerateImage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model      string   `json:"model"`
			Modalities []string `json:"modalities"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-image-model", req.Model)
		assert.Equal(t, []string{"image", "text"}, req.Modalities)
		w.Write([]byte(`{"choices": [{"message": {"content": "a description", "images": [{"image_url": {"url": "https://img.example/1.png"}}]}}]}`))
	})

	url, text, err := client.GenerateImage(context.Background(), "a hero image")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/1.png", url)
	assert.Equal(t, "a description", text)
}

func TestGatewayGenerateImageNoImageIsUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody("no image today")))
	})

	_, _, err := client.GenerateImage(context.Background(), "a hero image")
	assert.ErrorIs(t, err, ErrUpstream)
}
