package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// generator describes a static site generator whose pages keep the main
// content in a known container.
type generator struct {
	name    string
	meta    string   // substring of <meta name="generator">
	markers []string // any match identifies the generator
	content string
}

// generators is checked in order. VitePress precedes VuePress because both
// report "vuepress"-like markup.
var generators = []generator{
	{
		name:    "docusaurus",
		meta:    "docusaurus",
		markers: []string{"#__docusaurus_skipToContent_fallback", ".theme-doc-sidebar-container"},
		content: ".theme-doc-markdown, article .markdown",
	},
	{
		name:    "mkdocs",
		meta:    "mkdocs",
		markers: []string{"[data-md-color-scheme]", "[data-md-component]", ".md-nav--primary"},
		content: ".md-content__inner, .md-content",
	},
	{
		name:    "sphinx",
		meta:    "sphinx",
		markers: []string{".toctree-wrapper", ".wy-nav-side", ".sphinxsidebar"},
		content: `[itemprop="articleBody"], .rst-content .document, .body[role="main"]`,
	},
	{
		name:    "vitepress",
		meta:    "vitepress",
		markers: []string{"#VPContent", ".VPDoc"},
		content: ".vp-doc",
	},
	{
		name:    "vuepress",
		meta:    "vuepress",
		markers: []string{".theme-default-content", ".vuepress-navbar"},
		content: ".theme-default-content",
	},
	{
		name:    "gitbook",
		meta:    "gitbook",
		markers: []string{"[data-testid='space.sidebar']", "[data-testid='page.desktopTableOfContents']"},
		content: "main .page-body, main",
	},
	{
		name:    "nextra",
		meta:    "nextra",
		markers: []string{".nextra-navbar", ".nextra-sidebar", ".nextra-toc"},
		content: "main .nextra-content, article main",
	},
	{
		name:    "hugo",
		meta:    "hugo",
		content: ".post-content, .td-content, article",
	},
	{
		name:    "wordpress",
		meta:    "wordpress",
		markers: []string{"body.wp-singular", "link[href*='wp-content']"},
		content: ".entry-content, .wp-block-post-content",
	},
}

// detectGenerator identifies the site generator that produced doc, or
// returns false when no generator matches. Must run before boilerplate
// removal since most markers live in navigation.
func detectGenerator(doc *goquery.Document) (generator, bool) {
	meta := strings.ToLower(doc.Find(`meta[name="generator"]`).AttrOr("content", ""))
	if meta != "" {
		for _, g := range generators {
			if strings.Contains(meta, g.meta) {
				return g, true
			}
		}
	}

	for _, g := range generators {
		for _, m := range g.markers {
			if doc.Find(m).Length() > 0 {
				return g, true
			}
		}
	}
	return generator{}, false
}
