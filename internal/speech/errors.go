package speech

import "errors"

// Errors reported by the controller.
var (
	// ErrNoActiveProcess means pause, resume, toggle or terminate was
	// called with no engine process to act on.
	ErrNoActiveProcess = errors.New("no active speech process")
	// ErrSpawnRefused means a spawn found an engine already speaking and
	// the caller declined to replace it.
	ErrSpawnRefused = errors.New("speech process already active, replacement refused")
)
