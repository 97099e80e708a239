package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/tldr"
	"github.com/rs/zerolog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   *Config
	Logger   zerolog.Logger
	Pipeline *tldr.Pipeline

	// CredentialHint explains how to configure the missing LLM credential.
	// Empty when a summarizer is configured.
	CredentialHint string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Provider          string        `help:"LLM provider: groq or gemini (overrides LLM_PROVIDER)."`
	Model             string        `help:"Chat model name (overrides LLM_MODEL)."`
	Browser           bool          `help:"Render pages in headless Chrome before extraction."`
	StrictTranscripts bool          `name:"strict-transcripts" help:"Fail instead of using video metadata when the transcript API errors for reasons other than disabled captions."`
	Timeout           time.Duration `help:"HTTP fetch timeout (overrides FETCH_TIMEOUT)."`

	Summarize SummarizeCmd `cmd:"" help:"Summarize the content at a URL"`
	Extract   ExtractCmd   `cmd:"" help:"Print the text extracted from a URL without summarizing"`
	Serve     ServeCmd     `cmd:"" help:"Serve the summarize form over HTTP"`
}

// Apply copies flags that were set onto cfg.
func (c *CLI) Apply(cfg *Config) {
	if c.Provider != "" {
		cfg.Provider = c.Provider
	}
	if c.Model != "" {
		cfg.Model = c.Model
	}
	if c.Browser {
		cfg.Browser = true
	}
	if c.StrictTranscripts {
		cfg.StrictTranscripts = true
	}
	if c.Timeout > 0 {
		cfg.FetchTimeout = c.Timeout
	}
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL string `arg:"" help:"Web page or YouTube video URL"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL  string `arg:"" help:"Web page or YouTube video URL"`
	JSON bool   `help:"Print the document as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides TLDR_ADDR)."`
}
