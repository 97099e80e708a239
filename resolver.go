package tldr

import (
	"context"
	"net/url"
)

// Resolver produces a Document from a URL.
type Resolver interface {
	// Resolve classifies rawURL and extracts its text.
	// Returns EEXTRACT if every applicable strategy fails.
	Resolve(ctx context.Context, rawURL string) (*Document, error)
}

// Loader is a single extraction strategy.
type Loader interface {
	// Load extracts a Document from u. Any error means the strategy failed.
	Load(ctx context.Context, u *url.URL) (*Document, error)
}

// LoaderFunc adapts an ordinary function to the Loader interface.
type LoaderFunc func(ctx context.Context, u *url.URL) (*Document, error)

// Load calls fn(ctx, u).
func (fn LoaderFunc) Load(ctx context.Context, u *url.URL) (*Document, error) {
	return fn(ctx, u)
}
