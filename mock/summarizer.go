package mock

import (
	"context"

	"github.com/fwojciec/tldr"
)

var _ tldr.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of tldr.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, doc *tldr.Document) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, doc *tldr.Document) (string, error) {
	return s.SummarizeFn(ctx, doc)
}
