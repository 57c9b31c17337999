// Package media resolves stored file references into caller-usable URLs.
//
// The catalog stores relative file references ("songs/abc.mp3",
// "song_covers/abc.jpg"). Serving those files is someone else's job — a CDN
// or reverse proxy in front of the media root. This package only turns a
// stored reference into an absolute locator clients can fetch.
package media

import "strings"

// Resolver turns stored media references into absolute URLs.
type Resolver struct {
	baseURL string
}

// NewResolver creates a resolver for the given public base URL.
// A trailing slash on the base URL is tolerated.
func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// Resolve returns the absolute URL for a stored reference.
// Empty references resolve to "" (no file attached). References that are
// already absolute are passed through untouched.
func (r *Resolver) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return r.baseURL + "/" + strings.TrimLeft(ref, "/")
}
