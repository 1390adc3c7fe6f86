package extract

// View is the document/viewer collaborator the extractor reads through.
// Implementations belong to the host environment; the core only needs
// plain text back, or a structural error when a mode does not apply.
type View interface {
	// Body returns the full plain text of the document.
	Body() (string, error)
	// Selection returns the text of the active selection, or
	// ErrNoActiveSelection when nothing is selected.
	Selection() (string, error)
	// PageText returns the text currently visible in the viewport.
	PageText() (string, error)
}
