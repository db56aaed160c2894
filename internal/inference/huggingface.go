package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/interview-coach/internal/config"
)

// DefaultRouterBase is the HuggingFace inference router endpoint.
const DefaultRouterBase = "https://router.huggingface.co/models"

// HuggingFaceClient calls the HuggingFace inference router over plain HTTP.
// Models frequently respond with one of several body shapes; decoding
// tolerates all of them and normalizes to the Client contract.
type HuggingFaceClient struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	textModel      string
	sentimentModel string
}

// NewHuggingFaceClient creates a HuggingFace gateway client from configuration.
func NewHuggingFaceClient(cfg *config.Config) *HuggingFaceClient {
	return &HuggingFaceClient{
		httpClient:     &http.Client{Timeout: cfg.InferenceTimeout()},
		baseURL:        DefaultRouterBase,
		apiKey:         cfg.HFAPIKey,
		textModel:      cfg.TextModel,
		sentimentModel: cfg.SentimentModel,
	}
}

// WithBaseURL overrides the router endpoint. Used by tests to point the
// client at a local httptest server.
func (c *HuggingFaceClient) WithBaseURL(base string) *HuggingFaceClient {
	c.baseURL = strings.TrimRight(base, "/")
	return c
}

// textRequest is the text-generation request payload.
type textRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters textParameters `json:"parameters"`
}

type textParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

// sentimentRequest is the sentiment-classification request payload.
type sentimentRequest struct {
	Inputs string `json:"inputs"`
}

// GenerateText sends the prompt to the configured text model.
func (c *HuggingFaceClient) GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if opts.MaxNewTokens <= 0 {
		opts.MaxNewTokens = 512
	}

	body, err := c.post(ctx, c.textModel, textRequest{
		Inputs: prompt,
		Parameters: textParameters{
			MaxNewTokens:   opts.MaxNewTokens,
			Temperature:    opts.Temperature,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", err
	}

	text, err := DecodeTextResponse(body)
	if err != nil {
		return "", &MalformedError{Model: c.textModel, Detail: err.Error()}
	}
	return text, nil
}

// ClassifySentiment classifies the text with the configured sentiment model.
// Unrecognized body shapes degrade to a neutral result rather than failing.
func (c *HuggingFaceClient) ClassifySentiment(ctx context.Context, text string) (SentimentResult, error) {
	body, err := c.post(ctx, c.sentimentModel, sentimentRequest{Inputs: text})
	if err != nil {
		return SentimentResult{}, err
	}
	return DecodeSentimentResponse(body), nil
}

// Close implements Client. The HTTP client holds no resources to release.
func (c *HuggingFaceClient) Close() error {
	return nil
}

// post sends a JSON payload to the model endpoint and returns the raw body.
func (c *HuggingFaceClient) post(ctx context.Context, model string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Model: model, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for connection reuse
		return nil, &UnavailableError{Model: model, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Model: model, Cause: err}
	}
	return body, nil
}

// DecodeTextResponse normalizes the four known text-generation body shapes:
// a direct JSON string, {"generated_text": ...}, or an array of either
// (including the {"text": ...} variant some models emit).
func DecodeTextResponse(body []byte) (string, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		// Some deployments return plain text rather than JSON.
		if s := strings.TrimSpace(string(body)); s != "" {
			return s, nil
		}
		return "", fmt.Errorf("empty or undecodable body")
	}

	switch v := raw.(type) {
	case string:
		return v, nil
	case map[string]any:
		if text := stringField(v, "generated_text"); text != "" {
			return text, nil
		}
		if text := stringField(v, "text"); text != "" {
			return text, nil
		}
	case []any:
		if len(v) == 0 {
			return "", fmt.Errorf("empty array body")
		}
		switch first := v[0].(type) {
		case string:
			return first, nil
		case map[string]any:
			if text := stringField(first, "generated_text"); text != "" {
				return text, nil
			}
			if text := stringField(first, "text"); text != "" {
				return text, nil
			}
		}
	}
	return "", fmt.Errorf("unrecognized response shape")
}

// DecodeSentimentResponse normalizes the sentiment body shapes:
// {"label": ..., "score": ...}, [{"label": ...}], or the nested
// [[{"label": ...}, ...]] form. Unknown shapes yield a neutral result.
func DecodeSentimentResponse(body []byte) SentimentResult {
	neutral := SentimentResult{Label: "neutral", Score: 0.5}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return neutral
	}

	if m, ok := raw.(map[string]any); ok {
		if r, ok := labelScore(m); ok {
			return r
		}
		return neutral
	}

	arr, ok := raw.([]any)
	if !ok || len(arr) == 0 {
		return neutral
	}

	// Either [ {label,score} ] or [ [ {label,score}, ... ] ]; the nested
	// form lists all labels, highest-score first.
	if inner, ok := arr[0].([]any); ok {
		if len(inner) == 0 {
			return neutral
		}
		if m, ok := inner[0].(map[string]any); ok {
			if r, ok := labelScore(m); ok {
				return r
			}
		}
		return neutral
	}
	if m, ok := arr[0].(map[string]any); ok {
		if r, ok := labelScore(m); ok {
			return r
		}
	}
	return neutral
}

func labelScore(m map[string]any) (SentimentResult, bool) {
	label := stringField(m, "label")
	if label == "" {
		return SentimentResult{}, false
	}
	score := 0.5
	if f, ok := m["score"].(float64); ok {
		score = f
	}
	return SentimentResult{Label: label, Score: score}, true
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
