// Package youtube reads video details and caption transcripts from YouTube.
// Loader scrapes the watch page; TranscriptClient asks the innertube player
// endpoint. Both parse caption tracks from the timedtext XML format.
package youtube

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/tldr"
)

// DefaultBaseURL is the origin used for watch pages and the player endpoint.
const DefaultBaseURL = "https://www.youtube.com"

const (
	androidVersion = "20.10.38"
	androidUA      = "com.google.android.youtube/" + androidVersion + " (Linux; U; Android 11) gzip"
	browserUA      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/116.0.0.0 Safari/537.36"

	maxPageBytes     = 6 << 20
	maxTimedTextSize = 1 << 20
)

// Option configures a Loader or TranscriptClient.
type Option func(*client)

// WithBaseURL overrides the YouTube origin.
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.http = hc
	}
}

// WithLanguages sets caption language preferences, most preferred first.
func WithLanguages(langs ...string) Option {
	return func(c *client) {
		c.languages = langs
	}
}

type client struct {
	baseURL   string
	http      *http.Client
	languages []string
}

func newClient(opts ...Option) *client {
	c := &client{
		baseURL:   DefaultBaseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		languages: []string{"en"},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// playerResponse is the subset of the player response read by this package.
// The watch page embeds the same structure as ytInitialPlayerResponse.
type playerResponse struct {
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	VideoDetails *struct {
		VideoID          string `json:"videoId"`
		Title            string `json:"title"`
		Author           string `json:"author"`
		ShortDescription string `json:"shortDescription"`
	} `json:"videoDetails"`
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

// tracks returns the caption tracks, or ETRANSCRIPTSDISABLED when the video
// has none.
func (p *playerResponse) tracks(videoID string) ([]captionTrack, error) {
	if p.Captions == nil || len(p.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks) == 0 {
		if p.PlayabilityStatus != nil && p.PlayabilityStatus.Reason != "" {
			return nil, tldr.Errorf(tldr.ETRANSCRIPTSDISABLED, "transcripts unavailable for %s: %s", videoID, p.PlayabilityStatus.Reason)
		}
		return nil, tldr.Errorf(tldr.ETRANSCRIPTSDISABLED, "transcripts are disabled for %s", videoID)
	}
	return p.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}

// needsPoToken reports whether a caption track URL requires a proof-of-origin
// token, which only a real browser can supply.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickTrack selects the best usable caption track: a manual track in a
// preferred language, then an auto-generated one, then any English track,
// then whatever is left.
func pickTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}

// transcript picks a caption track and fetches its segments.
func (c *client) transcript(ctx context.Context, videoID string, p *playerResponse) ([]tldr.Segment, error) {
	tracks, err := p.tracks(videoID)
	if err != nil {
		return nil, err
	}
	track, ok := pickTrack(tracks, c.languages)
	if !ok {
		return nil, tldr.Errorf(tldr.ETRANSCRIPTSDISABLED, "all caption tracks for %s require a browser token", videoID)
	}
	return c.fetchTimedText(ctx, track.BaseURL)
}

// get performs a GET request and returns at most limit bytes of the body.
func (c *client) get(ctx context.Context, rawURL, userAgent string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}

func (c *client) fetchTimedText(ctx context.Context, trackURL string) ([]tldr.Segment, error) {
	body, err := c.get(ctx, trackURL, browserUA, maxTimedTextSize)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	return parseTimedText(body)
}

// parseTimedText reads caption segments from timedtext XML. Both the legacy
// <transcript><text start dur> layout and format 3 (<p t d> in
// milliseconds) are accepted.
func parseTimedText(data []byte) ([]tldr.Segment, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parse timedtext: %w", err)
	}

	var segments []tldr.Segment
	for _, el := range doc.FindElements("//text") {
		text := cleanCaption(el.Text())
		if text == "" {
			continue
		}
		segments = append(segments, tldr.Segment{
			Text:     text,
			Start:    seconds(el.SelectAttrValue("start", "")),
			Duration: seconds(el.SelectAttrValue("dur", "")),
		})
	}
	for _, el := range doc.FindElements("//body/p") {
		text := cleanCaption(paragraphText(el))
		if text == "" {
			continue
		}
		segments = append(segments, tldr.Segment{
			Text:     text,
			Start:    millis(el.SelectAttrValue("t", "")),
			Duration: millis(el.SelectAttrValue("d", "")),
		})
	}
	return segments, nil
}

// paragraphText concatenates the character data of a format 3 paragraph,
// including word-level <s> children.
func paragraphText(el *etree.Element) string {
	var sb strings.Builder
	sb.WriteString(el.Text())
	for _, child := range el.ChildElements() {
		sb.WriteString(child.Text())
		sb.WriteString(child.Tail())
	}
	return sb.String()
}

// cleanCaption decodes entities left after XML parsing and collapses
// whitespace.
func cleanCaption(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}

func seconds(s string) time.Duration {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return time.Duration(f * float64(time.Second))
}

func millis(s string) time.Duration {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return time.Duration(n) * time.Millisecond
}
