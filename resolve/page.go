package resolve

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/tldr"
)

// Ensure types implement their interfaces at compile time.
var (
	_ tldr.Loader    = (*PageLoader)(nil)
	_ tldr.Extractor = (Extractors)(nil)
)

// PageLoader fetches a generic web page and converts its main content to
// plain text.
type PageLoader struct {
	Fetcher   tldr.Fetcher
	Extractor tldr.Extractor
	Converter tldr.Converter
}

// Load fetches u, extracts the main content and converts it to text.
func (l *PageLoader) Load(ctx context.Context, u *url.URL) (*tldr.Document, error) {
	html, err := l.Fetcher.Fetch(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	result, err := l.Extractor.Extract(html)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	text, err := l.Converter.Convert(result.ContentHTML)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, tldr.Errorf(tldr.ENOTFOUND, "no readable text on %s", u)
	}

	return &tldr.Document{
		Text:      text,
		SourceURL: u.String(),
		Title:     result.Title,
		Method:    tldr.MethodPage,
	}, nil
}

// Extractors tries each extractor in order and returns the first result
// with non-empty content.
type Extractors []tldr.Extractor

// Extract implements tldr.Extractor.
func (e Extractors) Extract(html string) (*tldr.ExtractResult, error) {
	var errs []error
	for _, ext := range e {
		result, err := ext.Extract(html)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if strings.TrimSpace(result.ContentHTML) == "" {
			errs = append(errs, tldr.Errorf(tldr.ENOTFOUND, "no main content found"))
			continue
		}
		return result, nil
	}
	if len(errs) == 0 {
		return nil, tldr.Errorf(tldr.EINTERNAL, "no extractor configured")
	}
	return nil, errors.Join(errs...)
}
