// Package llm provides the Gemini client used to generate structured
// company/role analyses. The engine itself never calls this package; only
// the analyzer command and the HTTP server do.
package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateJSON generates a JSON payload for the prompt, falling back
	// through the configured model chain on per-model failures.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, config: config}, nil
}

// GenerateJSON asks each configured model in order until one returns a
// response. Per-model failures (overload, model not found) move to the
// next model; only exhausting the chain fails the call.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for _, modelName := range c.config.Models {
		model := c.client.GenerativeModel(modelName)
		model.SetTemperature(0.1) // Low temperature for consistent output
		model.ResponseMIMEType = "application/json"

		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = fmt.Errorf("model %s: %w", modelName, err)
			continue
		}

		text, err := extractTextFromResponse(resp)
		if err != nil {
			lastErr = fmt.Errorf("model %s: %w", modelName, err)
			continue
		}
		return CleanJSONBlock(text), nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no models configured")
	}
	return "", fmt.Errorf("all models failed: %w", lastErr)
}

// Close closes the underlying Gemini client
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// extractTextFromResponse pulls the text parts out of a Gemini response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("response candidate has no content")
	}

	var text string
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}
	if text == "" {
		return "", fmt.Errorf("response contains no text parts")
	}
	return text, nil
}
