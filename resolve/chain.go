// Package resolve turns URLs into documents. Videos go through an ordered
// fallback chain of extraction tiers; other pages are fetched, stripped of
// boilerplate and converted to plain text.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/fwojciec/tldr"
)

// Ensure Chain implements tldr.Loader at compile time.
var _ tldr.Loader = (*Chain)(nil)

// Tier is one strategy in an ordered fallback chain.
type Tier struct {
	Method string
	Loader tldr.Loader

	// Stop reports whether a failure of this tier ends the chain instead of
	// advancing to the next tier. Nil means every failure advances.
	Stop func(err error) bool
}

// Chain runs tiers in order until one produces a document.
type Chain struct {
	Tiers []Tier
}

// NewChain creates a Chain over the given tiers.
func NewChain(tiers ...Tier) *Chain {
	return &Chain{Tiers: tiers}
}

// Run executes tiers in order and returns the first document produced along
// with every attempt made. Later tiers are never invoked once one succeeds.
func (c *Chain) Run(ctx context.Context, u *url.URL) (*tldr.Document, []tldr.Attempt) {
	attempts := make([]tldr.Attempt, 0, len(c.Tiers))
	for _, tier := range c.Tiers {
		if err := ctx.Err(); err != nil {
			attempts = append(attempts, tldr.Attempt{Method: tier.Method, Err: err})
			break
		}

		doc, err := tier.Loader.Load(ctx, u)
		if err == nil && (doc == nil || doc.Text == "") {
			err = tldr.Errorf(tldr.ENOTFOUND, "no text extracted")
		}
		attempts = append(attempts, tldr.Attempt{Method: tier.Method, Err: err})
		if err == nil {
			if doc.Method == "" {
				doc.Method = tier.Method
			}
			return doc, attempts
		}

		if tier.Stop != nil && tier.Stop(err) {
			break
		}
	}
	return nil, attempts
}

// Load runs the chain and returns EEXTRACT carrying every tier's cause when
// no tier succeeds.
func (c *Chain) Load(ctx context.Context, u *url.URL) (*tldr.Document, error) {
	doc, attempts := c.Run(ctx, u)
	if doc != nil {
		return doc, nil
	}
	return nil, exhausted(attempts)
}

func exhausted(attempts []tldr.Attempt) error {
	if len(attempts) == 0 {
		return tldr.Errorf(tldr.EEXTRACT, "No extraction method is configured")
	}
	causes := make([]error, 0, len(attempts))
	for _, a := range attempts {
		causes = append(causes, fmt.Errorf("%s: %w", a.Method, a.Err))
	}
	return tldr.WrapError(tldr.EEXTRACT, errors.Join(causes...), "Failed to extract video content")
}
