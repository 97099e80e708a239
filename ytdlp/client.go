// Package ytdlp reads video metadata with the yt-dlp command without
// downloading the stream.
package ytdlp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/tldr"
	"github.com/lrstanley/go-ytdlp"
)

// Ensure Client implements tldr.VideoInfoService at compile time.
var _ tldr.VideoInfoService = (*Client)(nil)

// RunFunc runs yt-dlp against a URL and returns its standard output.
type RunFunc func(ctx context.Context, rawURL string) (string, error)

// Option configures a Client.
type Option func(*Client)

// WithRunner replaces the yt-dlp invocation.
func WithRunner(run RunFunc) Option {
	return func(c *Client) {
		c.run = run
	}
}

// WithProxy routes yt-dlp traffic through proxy.
func WithProxy(proxy string) Option {
	return func(c *Client) {
		c.proxy = proxy
	}
}

// Client extracts video metadata with yt-dlp.
type Client struct {
	run   RunFunc
	proxy string
}

// NewClient creates a Client that invokes the yt-dlp binary found on PATH.
func NewClient(opts ...Option) *Client {
	c := &Client{}
	c.run = c.runCommand
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) runCommand(ctx context.Context, rawURL string) (string, error) {
	dl := ytdlp.New().
		SkipDownload().
		PrintJSON().
		NoPlaylist().
		Quiet().
		NoWarnings()
	if c.proxy != "" {
		dl = dl.Proxy(c.proxy)
	}

	result, err := dl.Run(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return result.Stdout, nil
}

// info is the subset of yt-dlp's info JSON used here. Description is a
// pointer so that a missing field can be told apart from an empty one.
type info struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Uploader    string  `json:"uploader"`
	Description *string `json:"description"`
}

// FetchVideoInfo returns the metadata of the video at rawURL.
func (c *Client) FetchVideoInfo(ctx context.Context, rawURL string) (*tldr.VideoInfo, error) {
	out, err := c.run(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp: %w", err)
	}

	line, ok := firstJSONLine(out)
	if !ok {
		return nil, tldr.Errorf(tldr.ENOTFOUND, "yt-dlp returned no metadata for %s", rawURL)
	}

	var v info
	if err := json.Unmarshal([]byte(line), &v); err != nil {
		return nil, fmt.Errorf("decode yt-dlp output: %w", err)
	}

	vi := &tldr.VideoInfo{
		ID:     v.ID,
		Title:  v.Title,
		Author: v.Uploader,
	}
	if v.Description != nil {
		vi.Description = *v.Description
		vi.HasDescription = true
	}
	return vi, nil
}

// firstJSONLine returns the first line of out that looks like a JSON object.
func firstJSONLine(out string) (string, bool) {
	sc := bufio.NewScanner(strings.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "{") {
			return line, true
		}
	}
	return "", false
}
