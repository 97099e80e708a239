package resolve

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/tldr"
)

// Ensure tier loaders implement tldr.Loader at compile time.
var (
	_ tldr.Loader = (*TranscriptLoader)(nil)
	_ tldr.Loader = (*MetadataLoader)(nil)
)

// TranscriptLoader builds a document from a video's timed transcript.
type TranscriptLoader struct {
	Transcripts tldr.TranscriptService
}

// Load derives the video ID from u and joins the transcript segments.
// A URL without a video ID fails with ENOTFOUND.
func (l *TranscriptLoader) Load(ctx context.Context, u *url.URL) (*tldr.Document, error) {
	id, ok := tldr.VideoID(u)
	if !ok {
		return nil, tldr.Errorf(tldr.ENOTFOUND, "no video ID in %s", u)
	}

	segments, err := l.Transcripts.FetchTranscript(ctx, id)
	if err != nil {
		return nil, err
	}

	text := tldr.JoinSegments(segments)
	if strings.TrimSpace(text) == "" {
		return nil, tldr.Errorf(tldr.ENOTFOUND, "transcript for %s is empty", id)
	}

	return &tldr.Document{
		Text:      text,
		SourceURL: u.String(),
		Method:    tldr.MethodTranscriptAPI,
	}, nil
}

// MetadataLoader builds a document from a video's description.
type MetadataLoader struct {
	Videos tldr.VideoInfoService
}

// Load fetches video metadata and uses the description as the document
// text, or tldr.NoDescription when the video has none.
func (l *MetadataLoader) Load(ctx context.Context, u *url.URL) (*tldr.Document, error) {
	info, err := l.Videos.FetchVideoInfo(ctx, u.String())
	if err != nil {
		return nil, err
	}

	text := info.Description
	if !info.HasDescription || strings.TrimSpace(text) == "" {
		text = tldr.NoDescription
	}

	return &tldr.Document{
		Text:      text,
		SourceURL: u.String(),
		Title:     info.Title,
		Method:    tldr.MethodMetadata,
	}, nil
}

// ChainOption configures a video chain.
type ChainOption func(*videoChainConfig)

type videoChainConfig struct {
	strict bool
	wrap   func(method string, next tldr.Loader) tldr.Loader
}

// WithStrictTranscripts makes transcript failures other than disabled
// captions or a missing video ID end the chain instead of falling through
// to the metadata tier.
func WithStrictTranscripts(strict bool) ChainOption {
	return func(c *videoChainConfig) {
		c.strict = strict
	}
}

// WithLoaderWrapper decorates every tier's loader, for example with logging.
func WithLoaderWrapper(wrap func(method string, next tldr.Loader) tldr.Loader) ChainOption {
	return func(c *videoChainConfig) {
		c.wrap = wrap
	}
}

// NewVideoChain returns the three-tier video chain: structured loader,
// transcript API, then metadata.
func NewVideoChain(structured tldr.Loader, transcripts tldr.TranscriptService, videos tldr.VideoInfoService, opts ...ChainOption) *Chain {
	var cfg videoChainConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	tiers := []Tier{
		{Method: tldr.MethodYouTubeLoader, Loader: structured},
		{Method: tldr.MethodTranscriptAPI, Loader: &TranscriptLoader{Transcripts: transcripts}},
		{Method: tldr.MethodMetadata, Loader: &MetadataLoader{Videos: videos}},
	}
	if cfg.strict {
		tiers[1].Stop = stopUnlessUnavailable
	}
	if cfg.wrap != nil {
		for i := range tiers {
			tiers[i].Loader = cfg.wrap(tiers[i].Method, tiers[i].Loader)
		}
	}

	return NewChain(tiers...)
}

// stopUnlessUnavailable lets only "no transcript for this video" failures
// fall through.
func stopUnlessUnavailable(err error) bool {
	switch tldr.ErrorCode(err) {
	case tldr.ETRANSCRIPTSDISABLED, tldr.ENOTFOUND:
		return false
	default:
		return true
	}
}
