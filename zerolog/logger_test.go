package zerolog_test

import (
	"bytes"
	"encoding/json"
	"testing"

	tldrlog "github.com/fwojciec/tldr/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("json format writes structured lines", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := tldrlog.NewLogger(tldrlog.Config{Level: tldrlog.LevelInfo, Format: tldrlog.FormatJSON}, &buf)
		require.NoError(t, err)

		logger.Info().Str("url", "https://example.com").Msg("hello")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["message"])
		assert.Equal(t, "https://example.com", line["url"])
		assert.Contains(t, line, "time")
	})

	t.Run("filters below level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := tldrlog.NewLogger(tldrlog.Config{Level: tldrlog.LevelWarn, Format: tldrlog.FormatJSON}, &buf)
		require.NoError(t, err)

		logger.Info().Msg("quiet")

		assert.Empty(t, buf.String())
	})

	t.Run("console format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := tldrlog.NewLogger(tldrlog.Config{Level: tldrlog.LevelDebug, Format: tldrlog.FormatConsole}, &buf)
		require.NoError(t, err)

		logger.Debug().Msg("readable")

		assert.Contains(t, buf.String(), "readable")
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		t.Parallel()

		_, err := tldrlog.NewLogger(tldrlog.Config{Level: "loud"}, &bytes.Buffer{})

		assert.Error(t, err)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := tldrlog.NewLogger(tldrlog.Config{Format: "xml"}, &bytes.Buffer{})

		assert.Error(t, err)
	})
}
