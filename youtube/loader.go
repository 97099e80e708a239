package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tldr"
)

// Ensure Loader implements tldr.Loader at compile time.
var _ tldr.Loader = (*Loader)(nil)

const playerResponseMarker = "ytInitialPlayerResponse = "

// Loader builds a document from the watch page: the video details followed
// by the caption transcript.
type Loader struct {
	*client
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	return &Loader{client: newClient(opts...)}
}

// Load fetches the watch page for the video in u and returns its details
// and transcript as a document.
func (l *Loader) Load(ctx context.Context, u *url.URL) (*tldr.Document, error) {
	id, ok := tldr.VideoID(u)
	if !ok {
		return nil, tldr.Errorf(tldr.ENOTFOUND, "no video ID in %s", u)
	}

	page, err := l.get(ctx, l.baseURL+"/watch?v="+url.QueryEscape(id), browserUA, maxPageBytes)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	p, err := parseWatchPage(page)
	if err != nil {
		return nil, err
	}
	if p.PlayabilityStatus != nil && p.PlayabilityStatus.Status != "" && p.PlayabilityStatus.Status != "OK" {
		return nil, fmt.Errorf("video %s is not playable: %s %s", id, p.PlayabilityStatus.Status, p.PlayabilityStatus.Reason)
	}

	segments, err := l.transcript(ctx, id, p)
	if err != nil {
		return nil, err
	}
	transcript := tldr.JoinSegments(segments)
	if strings.TrimSpace(transcript) == "" {
		return nil, tldr.Errorf(tldr.ENOTFOUND, "transcript for %s is empty", id)
	}

	doc := &tldr.Document{
		SourceURL: u.String(),
		Method:    tldr.MethodYouTubeLoader,
	}
	var header strings.Builder
	if d := p.VideoDetails; d != nil {
		doc.Title = d.Title
		if d.Title != "" {
			fmt.Fprintf(&header, "Title: %s\n", d.Title)
		}
		if d.Author != "" {
			fmt.Fprintf(&header, "Author: %s\n", d.Author)
		}
		if desc := strings.TrimSpace(d.ShortDescription); desc != "" {
			fmt.Fprintf(&header, "Description: %s\n", desc)
		}
	}
	if header.Len() > 0 {
		header.WriteString("\n")
	}
	doc.Text = header.String() + transcript
	return doc, nil
}

// parseWatchPage finds the script carrying ytInitialPlayerResponse and
// decodes the JSON object that follows the assignment.
func parseWatchPage(page []byte) (*playerResponse, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse watch page: %w", err)
	}

	var script string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if idx := strings.Index(text, playerResponseMarker); idx >= 0 {
			script = text[idx+len(playerResponseMarker):]
			return false
		}
		return true
	})
	if script == "" {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}

	// The decoder stops after the first value, so trailing statements are
	// ignored.
	var p playerResponse
	if err := json.NewDecoder(strings.NewReader(script)).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return &p, nil
}
