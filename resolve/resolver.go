package resolve

import (
	"context"
	"net/url"

	"github.com/fwojciec/tldr"
)

// Ensure Resolver implements tldr.Resolver at compile time.
var _ tldr.Resolver = (*Resolver)(nil)

// Resolver classifies a URL and dispatches it to the video chain or the
// page loader.
type Resolver struct {
	Video tldr.Loader
	Page  tldr.Loader
}

// NewResolver creates a new Resolver.
func NewResolver(video, page tldr.Loader) *Resolver {
	return &Resolver{Video: video, Page: page}
}

// Resolve implements tldr.Resolver. Every failure is reported as EEXTRACT.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*tldr.Document, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, tldr.WrapError(tldr.EINVALID, err, "invalid URL")
	}

	loader := r.Page
	if tldr.Classify(u) == tldr.KindVideo {
		loader = r.Video
	}

	doc, err := loader.Load(ctx, u)
	if err != nil {
		if tldr.ErrorCode(err) == tldr.EEXTRACT {
			return nil, err
		}
		return nil, tldr.WrapError(tldr.EEXTRACT, err, "Failed to extract content from %s", u)
	}
	if doc.SourceURL == "" {
		doc.SourceURL = u.String()
	}
	return doc, nil
}
