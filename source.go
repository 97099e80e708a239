package tldr

import (
	"net/url"
	"strings"
)

// Kind classifies a source URL.
type Kind string

// Kind constants.
const (
	KindPage  Kind = "page"
	KindVideo Kind = "video"
)

// Hosts recognized as YouTube.
const (
	HostYouTube      = "youtube.com"
	HostYouTubeWWW   = "www.youtube.com"
	HostYouTubeShort = "youtu.be"
)

// URLValidator checks that raw user input is a well-formed URL.
type URLValidator interface {
	ValidateURL(raw string) error
}

// Classify returns KindVideo for YouTube hosts and KindPage otherwise.
func Classify(u *url.URL) Kind {
	switch strings.ToLower(u.Hostname()) {
	case HostYouTube, HostYouTubeWWW, HostYouTubeShort:
		return KindVideo
	default:
		return KindPage
	}
}

// VideoID derives the YouTube video identifier from u.
// youtube.com hosts use the "v" query parameter; youtu.be uses the path
// without its leading slash. Any other host yields no identifier.
func VideoID(u *url.URL) (string, bool) {
	var id string
	switch strings.ToLower(u.Hostname()) {
	case HostYouTube, HostYouTubeWWW:
		id = u.Query().Get("v")
	case HostYouTubeShort:
		id = strings.TrimLeft(u.Path, "/")
	}
	return id, id != ""
}
