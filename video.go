package tldr

import (
	"context"
	"strings"
	"time"
)

// Segment is one timed caption line of a video transcript.
type Segment struct {
	Text     string
	Start    time.Duration
	Duration time.Duration
}

// JoinSegments concatenates segment texts in order, separated by single spaces.
func JoinSegments(segments []Segment) string {
	texts := make([]string, len(segments))
	for i, s := range segments {
		texts[i] = s.Text
	}
	return strings.Join(texts, " ")
}

// TranscriptService fetches the timed transcript of a video.
type TranscriptService interface {
	// FetchTranscript returns the caption segments of the video in order.
	// Returns ETRANSCRIPTSDISABLED if the video has no captions.
	FetchTranscript(ctx context.Context, videoID string) ([]Segment, error)
}

// VideoInfo holds video metadata obtained without downloading the stream.
type VideoInfo struct {
	ID          string
	Title       string
	Author      string
	Description string

	// HasDescription is false when the metadata carried no description field.
	HasDescription bool
}

// VideoInfoService extracts video metadata without downloading the video.
type VideoInfoService interface {
	FetchVideoInfo(ctx context.Context, rawURL string) (*VideoInfo, error)
}
