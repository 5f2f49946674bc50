package extract

import (
	"net/url"
	"strings"
)

// resolveReference returns ref as an absolute URL. Absolute references are
// returned unchanged. Relative references are resolved against base.
// Returns false if ref is empty, malformed, or relative without a usable base.
func resolveReference(base *url.URL, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	if u.IsAbs() {
		return ref, true
	}
	if base == nil || !base.IsAbs() {
		return "", false
	}
	return base.ResolveReference(u).String(), true
}

// isScriptLink reports whether href runs script instead of navigating.
func isScriptLink(href string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(href)), "javascript:")
}

// parseBase parses a page URL for use as a resolution base.
// Returns nil if the URL is malformed or not absolute.
func parseBase(pageURL string) *url.URL {
	u, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil || !u.IsAbs() {
		return nil
	}
	return u
}
