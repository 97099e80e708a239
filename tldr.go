// Package tldr summarizes web articles and YouTube videos.
// It resolves a URL to a plain-text document, using an ordered chain of
// extraction strategies for videos, and asks a hosted LLM for a summary.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., trafilatura/, langchain/, ytdlp/).
package tldr
