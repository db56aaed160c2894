// Package config provides configuration loading and validation for the interview-coach server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Default remote inference settings. The HuggingFace router serves both the
// text-generation and sentiment models used by the pipeline.
const (
	DefaultTextModel        = "meta-llama/Llama-3.2-3B-Instruct"
	DefaultSentimentModel   = "cardiffnlp/twitter-roberta-base-sentiment-latest"
	DefaultInferenceTimeout = 9 * time.Second
)

// Config represents the server configuration loadable from a JSON file.
// All fields are optional; missing values use defaults or environment variables.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Remote inference
	Provider         string  `json:"provider,omitempty"`          // "huggingface" (default) or "gemini"
	HFAPIKey         string  `json:"hf_api_key,omitempty"`        // HuggingFace API key; empty disables remote tiers
	GeminiAPIKey     string  `json:"gemini_api_key,omitempty"`    // Gemini API key (provider "gemini" only)
	TextModel        string  `json:"text_model,omitempty"`        // text-generation model ID
	SentimentModel   string  `json:"sentiment_model,omitempty"`   // sentiment-classification model ID
	TimeoutSeconds   float64 `json:"timeout_seconds,omitempty"`   // per-call inference timeout
	SentimentEnabled bool    `json:"sentiment_enabled,omitempty"` // call the sentiment model during analysis

	// Auth
	JWTSecret          string `json:"jwt_secret,omitempty"`           // token-signing secret, required to serve
	JWTExpirationHours int    `json:"jwt_expiration_hours,omitempty"` // token lifetime, default 24
	BcryptCost         int    `json:"bcrypt_cost,omitempty"`          // password hashing cost, default 12
	PasswordPepper     string `json:"password_pepper,omitempty"`      // optional secret mixed into password hashes

	// Logging
	LogJSON bool `json:"log_json,omitempty"` // emit JSON logs instead of console
	Debug   bool `json:"debug,omitempty"`    // enable debug-level logging
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a configuration from environment variables only.
func FromEnv() *Config {
	port := 0
	if v := os.Getenv("PORT"); v != "" {
		port, _ = strconv.Atoi(v)
	}
	timeout := 0.0
	if v := os.Getenv("INFERENCE_TIMEOUT_SECONDS"); v != "" {
		timeout, _ = strconv.ParseFloat(v, 64)
	}
	jwtHours := 0
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		jwtHours, _ = strconv.Atoi(v)
	}
	bcryptCost := 0
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		bcryptCost, _ = strconv.Atoi(v)
	}

	return &Config{
		Port:               port,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		Provider:           os.Getenv("AI_PROVIDER"),
		HFAPIKey:           os.Getenv("HF_API_KEY"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		TextModel:          os.Getenv("HF_TEXT_MODEL"),
		SentimentModel:     os.Getenv("HF_SENTIMENT_MODEL"),
		TimeoutSeconds:     timeout,
		SentimentEnabled:   os.Getenv("AI_SERVICE") == "huggingface",
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTExpirationHours: jwtHours,
		BcryptCost:         bcryptCost,
		PasswordPepper:     os.Getenv("PASSWORD_PEPPER"),
	}
}

// Merge returns a new Config with empty fields filled from defaults.
// Values already present on the receiver win.
func (c *Config) Merge(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.HFAPIKey == "" {
		result.HFAPIKey = defaults.HFAPIKey
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.TextModel == "" {
		result.TextModel = defaults.TextModel
	}
	if result.SentimentModel == "" {
		result.SentimentModel = defaults.SentimentModel
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.JWTSecret == "" {
		result.JWTSecret = defaults.JWTSecret
	}
	if result.JWTExpirationHours == 0 {
		result.JWTExpirationHours = defaults.JWTExpirationHours
	}
	if result.BcryptCost == 0 {
		result.BcryptCost = defaults.BcryptCost
	}
	if result.PasswordPepper == "" {
		result.PasswordPepper = defaults.PasswordPepper
	}
	// Bool fields: cannot distinguish unset from false, so config file values
	// only enable, never disable.
	result.SentimentEnabled = result.SentimentEnabled || defaults.SentimentEnabled
	result.LogJSON = result.LogJSON || defaults.LogJSON
	result.Debug = result.Debug || defaults.Debug

	return result
}

// Normalize fills remaining zero values with hard defaults and validates ranges.
func (c *Config) Normalize() error {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port out of range: %d", c.Port)
	}
	if c.Provider == "" {
		c.Provider = "huggingface"
	}
	if c.Provider != "huggingface" && c.Provider != "gemini" {
		return fmt.Errorf("config error: unknown provider %q", c.Provider)
	}
	if c.TextModel == "" {
		c.TextModel = DefaultTextModel
	}
	if c.SentimentModel == "" {
		c.SentimentModel = DefaultSentimentModel
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: timeout_seconds must be non-negative")
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = DefaultInferenceTimeout.Seconds()
	}
	return nil
}

// InferenceTimeout returns the per-call timeout as a duration.
func (c *Config) InferenceTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds * float64(time.Second))
}
