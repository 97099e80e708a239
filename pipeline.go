package tldr

import (
	"context"
	"strings"
)

// User-facing validation messages.
const (
	MsgMissingInput = "Please provide the required information to get started."
	MsgInvalidURL   = "Please enter a valid URL. It can be a YouTube video or a website URL."
)

// Result is the outcome of one summarize action.
type Result struct {
	Document *Document
	Summary  string
}

// Pipeline validates input, resolves a URL to a Document and summarizes it.
// All validation happens before any network call.
type Pipeline struct {
	Validator URLValidator
	Resolver  Resolver

	// Summarizer is nil when no LLM credential is configured.
	Summarizer Summarizer
}

// Run executes the full summarize action for rawURL.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*Result, error) {
	if p.Summarizer == nil {
		return nil, Errorf(EINVALID, MsgMissingInput)
	}
	doc, err := p.Extract(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	summary, err := p.Summarizer.Summarize(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &Result{Document: doc, Summary: summary}, nil
}

// Extract validates rawURL and resolves it without summarizing.
func (p *Pipeline) Extract(ctx context.Context, rawURL string) (*Document, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, Errorf(EINVALID, MsgMissingInput)
	}
	if err := p.Validator.ValidateURL(rawURL); err != nil {
		return nil, Errorf(EINVALID, MsgInvalidURL)
	}
	return p.Resolver.Resolve(ctx, rawURL)
}
