// Package langchain summarizes documents with a langchaingo
// stuff-documents chain over an OpenAI-compatible chat model.
package langchain

import (
	"context"
	"fmt"

	"github.com/fwojciec/tldr"
	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/prompts"
	"github.com/tmc/langchaingo/schema"
)

// Ensure Summarizer implements tldr.Summarizer at compile time.
var _ tldr.Summarizer = (*Summarizer)(nil)

const (
	// GroqBaseURL is Groq's OpenAI-compatible endpoint.
	GroqBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the Groq chat model used when none is configured.
	DefaultModel = "llama3-70b-8192"
)

const documentVariable = "text"

// NewGroqModel creates a chat model talking to Groq. An empty baseURL
// selects GroqBaseURL and an empty model selects DefaultModel.
func NewGroqModel(apiKey, model, baseURL string) (llms.Model, error) {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = GroqBaseURL
	}
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(baseURL),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create groq model: %w", err)
	}
	return llm, nil
}

// Summarizer sends the whole document in a single call; the text is never
// split.
type Summarizer struct {
	chain chains.StuffDocuments
}

// NewSummarizer creates a Summarizer over llm.
func NewSummarizer(llm llms.Model) *Summarizer {
	prompt := prompts.NewPromptTemplate(
		tldr.SummaryInstruction+"\nContent: {{."+documentVariable+"}}\n",
		[]string{documentVariable},
	)
	chain := chains.NewStuffDocuments(chains.NewLLMChain(llm, prompt))
	chain.DocumentVariableName = documentVariable
	return &Summarizer{chain: chain}
}

// Summarize returns the model's summary of doc verbatim.
func (s *Summarizer) Summarize(ctx context.Context, doc *tldr.Document) (string, error) {
	if doc == nil || doc.Text == "" {
		return "", tldr.Errorf(tldr.EINVALID, "document has no text")
	}

	out, err := chains.Call(ctx, s.chain, map[string]any{
		s.chain.InputKey: []schema.Document{{PageContent: doc.Text}},
	})
	if err != nil {
		return "", tldr.WrapError(tldr.ESUMMARY, err, "Failed to generate summary")
	}

	summary, ok := out[s.chain.LLMChain.OutputKey].(string)
	if !ok {
		return "", tldr.Errorf(tldr.ESUMMARY, "Failed to generate summary: unexpected chain output")
	}
	return summary, nil
}
