// Package speak wires extraction, link normalization and the process
// controller into the one entry point callers use.
package speak

import (
	"readaloud/internal/extract"
	"readaloud/internal/normalize"
)

// Controller is the slice of the process controller the service needs.
type Controller interface {
	Spawn(text string, speed int) error
}

// Source yields the raw text a speak request is about.
type Source interface {
	text(reg *extract.Registry) (string, error)
}

// Text speaks a literal string.
type Text string

func (t Text) text(*extract.Registry) (string, error) {
	return string(t), nil
}

// Document speaks a structured document through the strategy registered
// for its context tag.
type Document struct {
	Context string
	View    extract.View
}

func (d Document) text(reg *extract.Registry) (string, error) {
	return reg.Extract(d.Context, d.View)
}

// Region speaks the caller's explicit selection, bypassing whatever
// strategy the document's context would normally pick.
type Region struct {
	View extract.View
}

func (r Region) text(reg *extract.Registry) (string, error) {
	return reg.Fallback(r.View)
}

// Service orchestrates one speak request at a time. It holds no text
// beyond the call frame.
type Service struct {
	registry   *extract.Registry
	controller Controller
}

// NewService returns a service dispatching through reg and ctl.
func NewService(reg *extract.Registry, ctl Controller) *Service {
	return &Service{registry: reg, controller: ctl}
}

// Speak resolves the source to text, rewrites hyperlinks into spoken
// notices and hands the result to the engine controller. Extraction and
// process errors pass through unchanged.
func (s *Service) Speak(src Source, speed int) error {
	text, err := src.text(s.registry)
	if err != nil {
		return err
	}
	return s.controller.Spawn(normalize.Clean(text), speed)
}
