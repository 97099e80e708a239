// Package goquery provides a last-resort content extractor built on CSS
// selectors, for pages that defeat the article extraction heuristics.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tldr"
)

// Ensure TextExtractor implements tldr.Extractor at compile time.
var _ tldr.Extractor = (*TextExtractor)(nil)

// boilerplate matches elements that never carry readable content.
const boilerplate = `script, style, noscript, template, iframe, svg, form, nav, header, footer, aside,
[role="navigation"], [role="banner"], [role="contentinfo"], [aria-hidden="true"],
.nav, .navbar, .menu, .sidebar, .footer, .cookie-banner, .advertisement`

// containers is tried in order; the first match with text wins.
var containers = []string{
	"article",
	"main",
	`[role="main"]`,
	"#content",
	".content",
	".post-content",
	".entry-content",
	"body",
}

// TextExtractor picks the most likely content container and strips
// boilerplate elements from it.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract returns the first content container that has text after
// boilerplate removal. Pages built by a known site generator try the
// generator's content container first. Returns ENOTFOUND when the page
// has no text.
func (e *TextExtractor) Extract(html string) (*tldr.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, tldr.Errorf(tldr.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, tldr.Errorf(tldr.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("head title").First().Text())
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(og) != "" {
		title = strings.TrimSpace(og)
	}

	selectors := containers
	if g, ok := detectGenerator(doc); ok {
		selectors = append([]string{g.content}, containers...)
	}

	doc.Find(boilerplate).Remove()

	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 || strings.TrimSpace(sel.Text()) == "" {
			continue
		}
		content, err := goquery.OuterHtml(sel)
		if err != nil {
			return nil, err
		}
		return &tldr.ExtractResult{Title: title, ContentHTML: content}, nil
	}

	return nil, tldr.Errorf(tldr.ENOTFOUND, "page has no readable text")
}
