package mock

import (
	"context"

	"github.com/fwojciec/tldr"
)

var (
	_ tldr.TranscriptService = (*TranscriptService)(nil)
	_ tldr.VideoInfoService  = (*VideoInfoService)(nil)
)

// TranscriptService is a mock implementation of tldr.TranscriptService.
type TranscriptService struct {
	FetchTranscriptFn func(ctx context.Context, videoID string) ([]tldr.Segment, error)
}

func (s *TranscriptService) FetchTranscript(ctx context.Context, videoID string) ([]tldr.Segment, error) {
	return s.FetchTranscriptFn(ctx, videoID)
}

// VideoInfoService is a mock implementation of tldr.VideoInfoService.
type VideoInfoService struct {
	FetchVideoInfoFn func(ctx context.Context, rawURL string) (*tldr.VideoInfo, error)
}

func (s *VideoInfoService) FetchVideoInfo(ctx context.Context, rawURL string) (*tldr.VideoInfo, error) {
	return s.FetchVideoInfoFn(ctx, rawURL)
}
