package inference

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/interview-coach/internal/config"
)

// GeminiClient implements the gateway contract on top of the Gemini SDK.
// It serves text generation only; sentiment classification is a dedicated
// HuggingFace model, so ClassifySentiment reports unavailable and the
// analyzer falls back to its neutral default.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a Gemini gateway client.
func NewGeminiClient(ctx context.Context, cfg *config.Config) (*GeminiClient, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := cfg.TextModel
	if model == "" || strings.Contains(model, "/") {
		// Config carries a HuggingFace model ID; substitute the Gemini default.
		model = "gemini-2.5-flash"
	}

	return &GeminiClient{
		client:  client,
		model:   model,
		timeout: cfg.InferenceTimeout(),
	}, nil
}

// GenerateText generates text for the prompt, bounded by the gateway timeout.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(float32(opts.Temperature))
	if opts.MaxNewTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxNewTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &UnavailableError{Model: c.model, Cause: err}
	}

	text, err := geminiResponseText(resp)
	if err != nil {
		return "", &MalformedError{Model: c.model, Detail: err.Error()}
	}
	return CleanJSONBlock(text), nil
}

// ClassifySentiment is not supported by the Gemini provider.
func (c *GeminiClient) ClassifySentiment(_ context.Context, _ string) (SentimentResult, error) {
	return SentimentResult{}, &UnavailableError{
		Model: c.model,
		Cause: fmt.Errorf("sentiment classification not supported by gemini provider"),
	}
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// geminiResponseText extracts the text parts from a Gemini response.
func geminiResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
