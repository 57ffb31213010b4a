package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"postforge/config"
)

// ChatGateway is the seam between the content operations and the hosted model.
// Tests install a fake; production uses GatewayClient.
type ChatGateway interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
	GenerateImage(ctx context.Context, prompt string) (imageURL, text string, err error)
}

// GatewayClient talks to an OpenAI-compatible chat-completions gateway.
type GatewayClient struct {
	http       *http.Client
	baseURL    string
	apiKey     string
	model      string
	imageModel string
	logger     zerolog.Logger
}

func NewGatewayClient(cfg *config.Config, logger zerolog.Logger) *GatewayClient {
	timeout := time.Duration(cfg.Gateway.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GatewayClient{
		http:       &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.Gateway.URL, "/"),
		apiKey:     cfg.Gateway.ApiKey,
		model:      cfg.Gateway.Model,
		imageModel: cfg.Gateway.ImageModel,
		logger:     logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	Modalities  []string      `json:"modalities,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
			Images  []struct {
				ImageURL struct {
					URL string `json:"url"`
				} `json:"image_url"`
			} `json:"images,omitempty"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a system/user instruction pair and returns the raw textual
// completion. Upstream 429 and 402 are surfaced as distinct errors; everything
// else collapses to ErrUpstream with the detail logged.
func (c *GatewayClient) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	resp, err := c.call(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		c.logger.Error().Str("model", c.model).Msg("gateway returned no choices")
		return "", ErrUpstream
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateImage requests an image completion and returns the hosted image URL
// plus any accompanying text.
func (c *GatewayClient) GenerateImage(ctx context.Context, prompt string) (string, string, error) {
	resp, err := c.call(ctx, chatRequest{
		Model:      c.imageModel,
		Messages:   []chatMessage{{Role: "user", Content: prompt}},
		Modalities: []string{"image", "text"},
	})
	if err != nil {
		return "", "", err
	}
	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.Images) == 0 {
		c.logger.Error().Str("model", c.imageModel).Msg("gateway returned no image")
		return "", "", ErrUpstream
	}
	msg := resp.Choices[0].Message
	return msg.Images[0].ImageURL.URL, msg.Content, nil
}

func (c *GatewayClient) call(ctx context.Context, reqBody chatRequest) (*chatResponse, error) {
	if c.apiKey == "" {
		c.logger.Error().Msg("gateway api key is not configured")
		return nil, ErrUpstream
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("model", reqBody.Model).Msg("gateway request failed")
		return nil, ErrUpstream
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error().Err(err).Str("model", reqBody.Model).Msg("failed to read gateway response")
		return nil, ErrUpstream
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		c.logger.Warn().Str("model", reqBody.Model).Msg("gateway rate limit hit")
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		c.logger.Warn().Str("model", reqBody.Model).Msg("gateway reported payment required")
		return nil, ErrPaymentRequired
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		c.logger.Error().Int("status", resp.StatusCode).Str("model", reqBody.Model).Msg("gateway returned error status")
		return nil, ErrUpstream
	}

	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		c.logger.Error().Err(err).Str("model", reqBody.Model).Msg("failed to decode gateway response")
		return nil, ErrUpstream
	}
	return &completion, nil
}
