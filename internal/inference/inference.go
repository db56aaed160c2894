// Package inference provides the remote inference gateway: a thin,
// timeout-bounded client abstraction over the text-generation and
// sentiment-classification services used by the interview pipeline.
//
// Every call either succeeds, fails with *UnavailableError (timeout,
// non-2xx status, transport failure) or fails with *MalformedError
// (response body did not match any known shape). Callers are expected to
// fall back to local heuristics on either failure; the gateway itself
// never retries and never blocks past its timeout budget.
package inference

import (
	"context"
	"fmt"

	"github.com/jonathan/interview-coach/internal/config"
)

// GenerateOptions bounds a text-generation call.
type GenerateOptions struct {
	MaxNewTokens int
	Temperature  float64
}

// SentimentResult is the normalized output of the sentiment model.
type SentimentResult struct {
	Label string  // raw label as returned by the model
	Score float64 // 0-1 confidence
}

// Client is the gateway contract consumed by the pipeline stages.
type Client interface {
	// GenerateText sends a prompt to the text-generation model and returns
	// the raw generated text.
	GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
	// ClassifySentiment classifies free text, returning a coarse label and
	// confidence score.
	ClassifySentiment(ctx context.Context, text string) (SentimentResult, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a gateway client for the configured provider.
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiClient(ctx, cfg)
	case "huggingface", "":
		return NewHuggingFaceClient(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported inference provider: %s", cfg.Provider)
	}
}
