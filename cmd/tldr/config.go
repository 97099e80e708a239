package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/fwojciec/tldr/langchain"
	"github.com/fwojciec/tldr/validator"
	tldrlog "github.com/fwojciec/tldr/zerolog"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Provider names.
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Config is decoded once from the environment at startup.
type Config struct {
	// APIKey authenticates against Groq.
	APIKey string `env:"API_KEY"`
	// GeminiAPIKey authenticates against Gemini.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	Provider    string `env:"LLM_PROVIDER,default=groq" validate:"oneof=groq gemini"`
	Model       string `env:"LLM_MODEL"`
	GroqBaseURL string `env:"GROQ_BASE_URL,default=https://api.groq.com/openai/v1" validate:"url"`

	FetchTimeout      time.Duration `env:"FETCH_TIMEOUT,default=30s" validate:"gt=0"`
	FetchRPS          float64       `env:"FETCH_RPS,default=0" validate:"gte=0"`
	UserAgent         string        `env:"USER_AGENT"`
	Browser           bool          `env:"TLDR_BROWSER,default=false"`
	StrictTranscripts bool          `env:"TLDR_STRICT_TRANSCRIPTS,default=false"`

	Addr string `env:"TLDR_ADDR,default=:8080" validate:"required"`

	Log tldrlog.Config `env:""`
}

// DefaultConfig returns the configuration used when no environment
// variable is set.
func DefaultConfig() *Config {
	return &Config{
		Provider:     ProviderGroq,
		GroqBaseURL:  langchain.GroqBaseURL,
		FetchTimeout: 30 * time.Second,
		Addr:         ":8080",
		Log: tldrlog.Config{
			Level:  tldrlog.LevelInfo,
			Format: tldrlog.FormatConsole,
		},
	}
}

// LoadConfig loads envFiles, if present, and decodes the environment.
func LoadConfig(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := DefaultConfig()
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks every field against its rules.
func (c *Config) Validate() error {
	if err := validator.New().ValidateStruct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}
