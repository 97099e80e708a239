// Package zerolog builds the application logger and provides logging
// decorators for the domain services.
package zerolog

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Level is a log level name.
type Level string

const (
	LevelTrace Level = "trace"
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects the log output encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// Config configures NewLogger.
type Config struct {
	Level  Level  `env:"LOG_LEVEL,default=info" validate:"required,oneof=trace debug info warn error"`
	Format Format `env:"LOG_FORMAT,default=console" validate:"required,oneof=json console"`
}

// NewLogger creates a logger writing to w.
func NewLogger(cfg Config, w io.Writer) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	switch cfg.Format {
	case FormatConsole:
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}).Level(level).With().Timestamp().Logger(), nil
	case FormatJSON, "":
		return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format: %s", cfg.Format)
	}
}

func parseLevel(level Level) (zerolog.Level, error) {
	switch level {
	case LevelTrace:
		return zerolog.TraceLevel, nil
	case LevelDebug:
		return zerolog.DebugLevel, nil
	case LevelInfo, "":
		return zerolog.InfoLevel, nil
	case LevelWarn:
		return zerolog.WarnLevel, nil
	case LevelError:
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// event returns an info event, or a warn event carrying err.
func event(logger zerolog.Logger, err error) *zerolog.Event {
	if err != nil {
		return logger.Warn().Err(err)
	}
	return logger.Info()
}
