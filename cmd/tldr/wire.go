package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/tldr"
	"github.com/fwojciec/tldr/gemini"
	"github.com/fwojciec/tldr/goquery"
	"github.com/fwojciec/tldr/htmltomarkdown"
	tldrhttp "github.com/fwojciec/tldr/http"
	"github.com/fwojciec/tldr/langchain"
	"github.com/fwojciec/tldr/readability"
	"github.com/fwojciec/tldr/resolve"
	"github.com/fwojciec/tldr/rod"
	"github.com/fwojciec/tldr/trafilatura"
	"github.com/fwojciec/tldr/validator"
	"github.com/fwojciec/tldr/youtube"
	"github.com/fwojciec/tldr/ytdlp"
	tldrlog "github.com/fwojciec/tldr/zerolog"
	"github.com/rs/zerolog"
)

// Wiring holds the assembled pipeline and the resources behind it.
type Wiring struct {
	Pipeline       *tldr.Pipeline
	CredentialHint string

	fetcher tldr.Fetcher
}

// Close releases the page fetcher.
func (w *Wiring) Close() error {
	if w.fetcher == nil {
		return nil
	}
	return w.fetcher.Close()
}

// Wire builds the pipeline described by cfg.
func Wire(ctx context.Context, cfg *Config, logger zerolog.Logger) (*Wiring, error) {
	httpOpts := []tldrhttp.Option{tldrhttp.WithTimeout(cfg.FetchTimeout)}
	if cfg.UserAgent != "" {
		httpOpts = append(httpOpts, tldrhttp.WithUserAgent(cfg.UserAgent))
	}
	if cfg.FetchRPS > 0 {
		httpOpts = append(httpOpts, tldrhttp.WithRateLimit(cfg.FetchRPS))
	}
	httpFetcher := tldrhttp.NewFetcher(httpOpts...)

	var pageFetcher tldr.Fetcher = httpFetcher
	if cfg.Browser {
		var rodOpts []rod.Option
		if cfg.UserAgent != "" {
			rodOpts = append(rodOpts, rod.WithUserAgent(cfg.UserAgent))
		}
		browser, err := rod.NewFetcher(rodOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		pageFetcher = browser
	}
	pageFetcher = tldrlog.NewLoggingFetcher(pageFetcher, logger)
	w := &Wiring{fetcher: pageFetcher}

	page := &resolve.PageLoader{
		Fetcher: pageFetcher,
		Extractor: resolve.Extractors{
			trafilatura.NewExtractor(),
			readability.NewExtractor(),
			goquery.NewTextExtractor(),
		},
		Converter: htmltomarkdown.NewConverter(),
	}

	ytOpts := []youtube.Option{youtube.WithHTTPClient(httpFetcher.Client())}
	video := resolve.NewVideoChain(
		youtube.NewLoader(ytOpts...),
		youtube.NewTranscriptClient(ytOpts...),
		ytdlp.NewClient(),
		resolve.WithStrictTranscripts(cfg.StrictTranscripts),
		resolve.WithLoaderWrapper(func(method string, next tldr.Loader) tldr.Loader {
			return tldrlog.NewLoggingLoader(next, method, logger)
		}),
	)

	resolver := resolve.NewResolver(video, tldrlog.NewLoggingLoader(page, tldr.MethodPage, logger))

	summarizer, hint, err := newSummarizer(ctx, cfg)
	if err != nil {
		return nil, errors.Join(err, w.Close())
	}
	if summarizer != nil {
		summarizer = tldrlog.NewLoggingSummarizer(summarizer, logger)
	}

	w.Pipeline = &tldr.Pipeline{
		Validator:  validator.New(),
		Resolver:   tldrlog.NewLoggingResolver(resolver, logger),
		Summarizer: summarizer,
	}
	w.CredentialHint = hint
	return w, nil
}

// newSummarizer returns the configured provider's summarizer, or a nil
// summarizer and a hint when its credential is missing.
func newSummarizer(ctx context.Context, cfg *Config) (tldr.Summarizer, string, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey", nil
		}
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, "", err
		}
		return gemini.NewSummarizer(client.Models, cfg.Model), "", nil
	default:
		if cfg.APIKey == "" {
			return nil, "API_KEY environment variable not set. Get a Groq API key at https://console.groq.com/keys", nil
		}
		llm, err := langchain.NewGroqModel(cfg.APIKey, cfg.Model, cfg.GroqBaseURL)
		if err != nil {
			return nil, "", err
		}
		return langchain.NewSummarizer(llm), "", nil
	}
}
