// Package normalize rewrites text before it reaches the speech engine,
// so that raw hyperlinks are not read out character by character.
package normalize

import (
	"net/url"
	"regexp"
	"strings"
)

// Matches scheme-prefixed URIs and bare "www."/"wwwN." host forms.
var linkPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://[^\s<>"')]+|\bwww\d*\.[^\s<>"')]+`)

var wwwPrefix = regexp.MustCompile(`^www\d*\.`)

// Clean replaces every hyperlink-like substring in text with a short
// spoken notice naming only the host. Text without links comes back
// unchanged, and the notice itself never re-matches, so a single pass is
// enough. Host parsing is best effort: a malformed URL yields whatever
// partial host can be salvaged rather than an error.
func Clean(text string) string {
	return linkPattern.ReplaceAllStringFunc(text, func(match string) string {
		return "Link removed: " + host(match)
	})
}

// host strips scheme, path, query and fragment from a link, then drops a
// leading "www."/"wwwN." label from what remains. Bare "www." forms are
// parsed as if they carried an http scheme.
func host(link string) string {
	raw := link
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	h := ""
	if u, err := url.Parse(raw); err == nil {
		h = u.Hostname()
	}
	if h == "" {
		// Salvage pass for links url.Parse chokes on: take everything
		// after the scheme up to the first path or query separator.
		h = raw[strings.Index(raw, "://")+3:]
		if i := strings.IndexAny(h, "/?#"); i >= 0 {
			h = h[:i]
		}
	}
	return wwwPrefix.ReplaceAllString(h, "")
}
