// Package extract selects the part of a document that should be spoken,
// keyed by the viewing context the request came from.
package extract

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedContext means no strategy is registered for the
	// requested context tag.
	ErrUnsupportedContext = errors.New("no extraction strategy for context")
	// ErrStructuralMismatch means a document landmark a strategy relies
	// on was not found.
	ErrStructuralMismatch = errors.New("expected document landmark not found")
	// ErrNoActiveSelection means an explicit-region extraction was asked
	// for with nothing selected.
	ErrNoActiveSelection = errors.New("no active selection")
)

// Strategy produces the text to speak from a view. Strategies are pure:
// they read through the view and never mutate it.
type Strategy func(View) (string, error)

// Context tags understood out of the box.
const (
	ModeSelection = "selection"
	ModeArticle   = "article"
	ModeDocument  = "document"
	ModePage      = "page"
)

// Registry maps a context tag to the strategy that extracts text for it.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry returns a registry preloaded with the built-in strategies.
func NewRegistry() *Registry {
	r := &Registry{strategies: make(map[string]Strategy)}
	r.Register(ModeSelection, selection)
	r.Register(ModeArticle, articleBody)
	r.Register(ModeDocument, skipBanner)
	r.Register(ModePage, currentPage)
	return r
}

// Register installs or replaces the strategy for a context tag.
func (r *Registry) Register(tag string, s Strategy) {
	r.strategies[tag] = s
}

// Extract runs the strategy registered for tag against view.
func (r *Registry) Extract(tag string, view View) (string, error) {
	s, ok := r.strategies[tag]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedContext, tag)
	}
	return s(view)
}

// Fallback bypasses whatever strategy a context tag would pick and
// speaks the caller's own selection boundaries instead.
func (r *Registry) Fallback(view View) (string, error) {
	return selection(view)
}

func selection(v View) (string, error) {
	return v.Selection()
}

func currentPage(v View) (string, error) {
	return v.PageText()
}

// articleBody skips the header block and drops a trailing "URL:"
// metadata line along with everything after it.
func articleBody(v View) (string, error) {
	body, err := afterHeaders(v)
	if err != nil {
		return "", err
	}
	if i := trailingMarker(body); i >= 0 {
		body = strings.TrimRight(body[:i], "\n")
	}
	return body, nil
}

// skipBanner applies the same header-skip rule without the trailing
// marker exclusion.
func skipBanner(v View) (string, error) {
	return afterHeaders(v)
}

// afterHeaders returns the document text following the first blank line,
// which ends the header or banner block.
func afterHeaders(v View) (string, error) {
	body, err := v.Body()
	if err != nil {
		return "", err
	}
	i := strings.Index(body, "\n\n")
	if i < 0 {
		return "", fmt.Errorf("%w: no blank line ending the header block", ErrStructuralMismatch)
	}
	return body[i+2:], nil
}

// trailingMarker returns the offset of the last line starting with the
// "URL:" metadata token, or -1 when the text has none.
func trailingMarker(body string) int {
	if strings.HasPrefix(body, "URL:") {
		return 0
	}
	if i := strings.LastIndex(body, "\nURL:"); i >= 0 {
		return i + 1
	}
	return -1
}
