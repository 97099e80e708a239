// Package trafilatura extracts the main article content of a web page.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/tldr"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements tldr.Extractor at compile time.
var _ tldr.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Comments are left out since they
// are rarely part of what a reader wants summarized.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
		},
	}
}

// Extract processes raw HTML and returns the main content. Returns
// ENOTFOUND when no content node is identified.
func (e *Extractor) Extract(rawHTML string) (*tldr.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, tldr.Errorf(tldr.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, tldr.WrapError(tldr.ENOTFOUND, err, "no main content found")
	}
	if result.ContentNode == nil {
		return nil, tldr.Errorf(tldr.ENOTFOUND, "no main content found")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, err
	}

	return &tldr.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: buf.String(),
	}, nil
}
