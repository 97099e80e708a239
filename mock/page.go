package mock

import (
	"context"

	"github.com/fwojciec/tldr"
)

var (
	_ tldr.Fetcher   = (*Fetcher)(nil)
	_ tldr.Extractor = (*Extractor)(nil)
	_ tldr.Converter = (*Converter)(nil)
)

// Fetcher is a mock implementation of tldr.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

// Close calls CloseFn when set.
func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

// Extractor is a mock implementation of tldr.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*tldr.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*tldr.ExtractResult, error) {
	return e.ExtractFn(html)
}

// Converter is a mock implementation of tldr.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
