// Package readability extracts article content using Mozilla's Readability
// heuristics.
package readability

import (
	"strings"

	"github.com/fwojciec/tldr"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements tldr.Extractor at compile time.
var _ tldr.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article content.
func (e *Extractor) Extract(rawHTML string) (*tldr.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, tldr.Errorf(tldr.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, tldr.WrapError(tldr.ENOTFOUND, err, "no readable content found")
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, tldr.Errorf(tldr.ENOTFOUND, "no readable content found")
	}

	return &tldr.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
