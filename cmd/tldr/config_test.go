package main_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	main "github.com/fwojciec/tldr/cmd/tldr"
	tldrlog "github.com/fwojciec/tldr/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests in this file modify the process environment and must not run in
// parallel.

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"API_KEY", "LLM_PROVIDER", "FETCH_TIMEOUT", "TLDR_ADDR", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := main.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, main.ProviderGroq, cfg.Provider)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, tldrlog.LevelInfo, cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("API_KEY", "gsk-test")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("TLDR_STRICT_TRANSCRIPTS", "true")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := main.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "gsk-test", cfg.APIKey)
	assert.Equal(t, main.ProviderGemini, cfg.Provider)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.StrictTranscripts)
	assert.Equal(t, tldrlog.FormatJSON, cfg.Log.Format)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	os.Unsetenv("GEMINI_API_KEY")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GEMINI_API_KEY=from-file\n"), 0o600))

	cfg, err := main.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.GeminiAPIKey)
}

func TestLoadConfig_MissingEnvFileIgnored(t *testing.T) {
	_, err := main.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown provider", func(t *testing.T) {
		t.Parallel()

		cfg := main.DefaultConfig()
		cfg.Provider = "openai"

		require.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive timeout", func(t *testing.T) {
		t.Parallel()

		cfg := main.DefaultConfig()
		cfg.FetchTimeout = 0

		require.Error(t, cfg.Validate())
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		t.Parallel()

		cfg := main.DefaultConfig()
		cfg.Log.Level = "loud"

		require.Error(t, cfg.Validate())
	})
}

func TestCLI_Apply(t *testing.T) {
	t.Parallel()

	cfg := main.DefaultConfig()
	cli := &main.CLI{
		Provider:          main.ProviderGemini,
		Model:             "gemini-2.5-pro",
		StrictTranscripts: true,
		Timeout:           2 * time.Second,
	}

	cli.Apply(cfg)

	assert.Equal(t, main.ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.True(t, cfg.StrictTranscripts)
	assert.Equal(t, 2*time.Second, cfg.FetchTimeout)
	assert.False(t, cfg.Browser)
}
