package zerolog

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/tldr"
	"github.com/rs/zerolog"
)

// Ensure decorators implement their interfaces.
var (
	_ tldr.Loader     = (*LoggingLoader)(nil)
	_ tldr.Resolver   = (*LoggingResolver)(nil)
	_ tldr.Summarizer = (*LoggingSummarizer)(nil)
)

// LoggingLoader wraps one extraction tier and logs its outcome.
type LoggingLoader struct {
	next   tldr.Loader
	method string
	logger zerolog.Logger
}

// NewLoggingLoader creates a new LoggingLoader for the named method.
func NewLoggingLoader(next tldr.Loader, method string, logger zerolog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, method: method, logger: logger}
}

// Load delegates to the wrapped loader and logs the attempt.
func (l *LoggingLoader) Load(ctx context.Context, u *url.URL) (doc *tldr.Document, err error) {
	defer func(begin time.Time) {
		e := event(l.logger, err).
			Str("method", l.method).
			Str("url", u.String()).
			Dur("duration", time.Since(begin))
		if doc != nil {
			e = e.Int("chars", len(doc.Text))
		}
		if err != nil {
			e = e.Str("code", tldr.ErrorCode(err))
		}
		e.Msg("extract attempt")
	}(time.Now())
	return l.next.Load(ctx, u)
}

// LoggingResolver wraps a Resolver with logging.
type LoggingResolver struct {
	next   tldr.Resolver
	logger zerolog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next tldr.Resolver, logger zerolog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs which method produced
// the document.
func (r *LoggingResolver) Resolve(ctx context.Context, rawURL string) (doc *tldr.Document, err error) {
	defer func(begin time.Time) {
		e := event(r.logger, err).
			Str("url", rawURL).
			Dur("duration", time.Since(begin))
		if doc != nil {
			e = e.Str("method", doc.Method).Int("chars", len(doc.Text))
		}
		e.Msg("resolve")
	}(time.Now())
	return r.next.Resolve(ctx, rawURL)
}

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   tldr.Summarizer
	logger zerolog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next tldr.Summarizer, logger zerolog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs input and output
// sizes.
func (s *LoggingSummarizer) Summarize(ctx context.Context, doc *tldr.Document) (summary string, err error) {
	defer func(begin time.Time) {
		e := event(s.logger, err).
			Int("summary_chars", len(summary)).
			Dur("duration", time.Since(begin))
		if doc != nil {
			e = e.Int("input_chars", len(doc.Text))
		}
		e.Msg("summarize")
	}(time.Now())
	return s.next.Summarize(ctx, doc)
}
