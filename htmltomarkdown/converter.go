// Package htmltomarkdown turns extracted HTML into prompt-ready text.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/tldr"
)

// Ensure Converter implements tldr.Converter at compile time.
var _ tldr.Converter = (*Converter)(nil)

var (
	imageRE      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRE       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	blankLinesRE = regexp.MustCompile(`\n{3,}`)
)

// Converter renders HTML as Markdown and then drops images and link
// targets, keeping headings, lists and tables as lightweight structure.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into plain text.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", tldr.Errorf(tldr.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	text := imageRE.ReplaceAllString(md, "")
	text = linkRE.ReplaceAllString(text, "$1")
	text = blankLinesRE.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text), nil
}
