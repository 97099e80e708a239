package tldr

import "context"

// SummaryInstruction is the fixed instruction sent with every document.
const SummaryInstruction = "Provide a summary of the following content in 300 words\n" +
	"Don't mention the no of words in your response"

// Summarizer produces a natural-language summary of a Document.
type Summarizer interface {
	// Summarize sends the document text to an LLM in a single request and
	// returns the generated text verbatim.
	// Returns ESUMMARY if the request fails.
	Summarize(ctx context.Context, doc *Document) (string, error)
}

// SummaryPrompt interpolates text into the fixed summary instruction.
func SummaryPrompt(text string) string {
	return SummaryInstruction + "\nContent: " + text + "\n"
}
