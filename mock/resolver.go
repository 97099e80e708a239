package mock

import (
	"context"
	"net/url"

	"github.com/fwojciec/tldr"
)

var (
	_ tldr.Resolver     = (*Resolver)(nil)
	_ tldr.Loader       = (*Loader)(nil)
	_ tldr.URLValidator = (*URLValidator)(nil)
)

// Resolver is a mock implementation of tldr.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, rawURL string) (*tldr.Document, error)
}

func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*tldr.Document, error) {
	return r.ResolveFn(ctx, rawURL)
}

// Loader is a mock implementation of tldr.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, u *url.URL) (*tldr.Document, error)
}

func (l *Loader) Load(ctx context.Context, u *url.URL) (*tldr.Document, error) {
	return l.LoadFn(ctx, u)
}

// URLValidator is a mock implementation of tldr.URLValidator.
type URLValidator struct {
	ValidateURLFn func(raw string) error
}

func (v *URLValidator) ValidateURL(raw string) error {
	return v.ValidateURLFn(raw)
}
