//go:build windows

package main

import (
	"readaloud/internal/speech"
)

// Windows has no process suspend/continue signals, so there is nothing
// to control: just wait for the engine to finish.
func controlLoop(ctl *speech.Controller) error {
	waitIdle(ctl)
	return nil
}
