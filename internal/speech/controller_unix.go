//go:build unix

package speech

import (
	"errors"
	"fmt"
)

// Pause, Resume and Toggle ride on the process suspend/continue
// signals, so this half of the controller only exists on platforms that
// have them.

// Pause suspends the engine mid-utterance.
func (c *Controller) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.h == nil {
		return ErrNoActiveProcess
	}
	if err := c.h.proc.Suspend(); err != nil {
		return fmt.Errorf("suspend speech engine: %w", err)
	}
	c.h.state = StatePaused
	return nil
}

// Resume continues a suspended engine. Resuming an already-running
// engine is harmless.
func (c *Controller) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.h == nil {
		return ErrNoActiveProcess
	}
	if err := c.h.proc.Resume(); err != nil {
		return fmt.Errorf("continue speech engine: %w", err)
	}
	c.h.state = StateRunning
	return nil
}

// Toggle flips between paused and running based on what the OS reports
// for the process at this instant, falling back to the handle's own
// state when no report is available. A process in neither state (for
// example one that just exited) leaves everything untouched.
func (c *Controller) Toggle() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.h == nil {
		return ErrNoActiveProcess
	}

	stopped, err := c.h.proc.Stopped()
	if err != nil {
		if !errors.Is(err, errStatusUnknown) {
			return nil
		}
		stopped = c.h.state == StatePaused
	}
	if stopped {
		if err := c.h.proc.Resume(); err != nil {
			return fmt.Errorf("continue speech engine: %w", err)
		}
		c.h.state = StateRunning
		return nil
	}
	if err := c.h.proc.Suspend(); err != nil {
		return fmt.Errorf("suspend speech engine: %w", err)
	}
	c.h.state = StatePaused
	return nil
}
