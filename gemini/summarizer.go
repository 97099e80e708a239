// Package gemini summarizes documents with Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/tldr"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Summarizer implements tldr.Summarizer at compile time.
var _ tldr.Summarizer = (*Summarizer)(nil)

// Generator generates content from a model. *genai.Models satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Summarizer implements tldr.Summarizer using Google Gemini.
type Summarizer struct {
	models Generator
	model  string
}

// NewSummarizer creates a new Summarizer. An empty model selects
// DefaultModel.
func NewSummarizer(models Generator, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{models: models, model: model}
}

// NewClient creates a Gemini API client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, tldr.WrapError(tldr.EINVALID, err, "create gemini client")
	}
	return client, nil
}

// Summarize sends the summary prompt for doc in a single request and
// returns the generated text verbatim.
func (s *Summarizer) Summarize(ctx context.Context, doc *tldr.Document) (string, error) {
	if doc == nil || doc.Text == "" {
		return "", tldr.Errorf(tldr.EINVALID, "document has no text")
	}

	result, err := s.models.GenerateContent(ctx, s.model,
		[]*genai.Content{genai.NewContentFromText(tldr.SummaryPrompt(doc.Text), genai.RoleUser)},
		BuildConfig(),
	)
	if err != nil {
		return "", tldr.WrapError(tldr.ESUMMARY, err, "Failed to generate summary")
	}
	if result == nil {
		return "", tldr.Errorf(tldr.ESUMMARY, "Failed to generate summary: gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for summary requests.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}
