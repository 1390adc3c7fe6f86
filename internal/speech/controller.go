// Package speech owns the lifecycle of the single external speech
// engine process: spawning, suspend/resume signalling and termination.
package speech

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

// SpillThreshold is the payload size above which the text is written to
// a temporary file instead of being passed as a command-line argument,
// to stay under OS argument length limits.
const SpillThreshold = 30000

// ConfirmFunc is asked whether an active engine process may be
// terminated and replaced by a new spawn.
type ConfirmFunc func() bool

// Config for a controller.
type Config struct {
	// EnginePath is the speech engine executable.
	EnginePath string
	// Runner starts processes; nil selects the exec-backed runner.
	Runner Runner
	// Confirm resolves spawn conflicts; nil means never replace.
	Confirm ConfirmFunc
}

// handle tracks the one engine process the controller owns.
type handle struct {
	pid   int
	state State
	proc  Process
	spill string // temp file carrying an oversized payload, "" otherwise
}

// Controller owns the single engine process handle. All mutations of
// the handle go through the controller's mutex, so the one-process
// invariant holds even with concurrent callers.
type Controller struct {
	enginePath string
	runner     Runner
	confirm    ConfirmFunc

	mu  sync.Mutex
	h   *handle
	gen int // bumped per spawn so a stale reaper cannot clear its successor
}

// New creates a controller for the engine at cfg.EnginePath.
func New(cfg Config) *Controller {
	runner := cfg.Runner
	if runner == nil {
		runner = NewExecRunner()
	}
	return &Controller{
		enginePath: cfg.EnginePath,
		runner:     runner,
		confirm:    cfg.Confirm,
	}
}

// FindEngine locates a speech engine executable on PATH, preferring
// espeak-ng over the older espeak.
func FindEngine() (string, error) {
	candidates := []string{"espeak-ng", "espeak"}
	for _, candidate := range candidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", errors.New("speech engine executable not found in PATH")
}

// State reports the current handle state. A cleared handle reads as
// idle, which is equivalent to terminated.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.h == nil {
		return StateIdle
	}
	return c.h.state
}

// Spawn starts the engine over text at the given speed. Fire and
// forget: the engine speaks on its own and Spawn returns as soon as the
// process is running. When an engine is already active the confirm
// callback decides between terminate-and-replace and ErrSpawnRefused.
func (c *Controller) Spawn(text string, speed int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.h != nil && (c.h.state == StateRunning || c.h.state == StatePaused) {
		if c.confirm == nil || !c.confirm() {
			return ErrSpawnRefused
		}
		c.killLocked()
	}

	args := []string{"-s", strconv.Itoa(speed)}
	spill := ""
	if len(text) > SpillThreshold {
		path, err := writeSpill(text)
		if err != nil {
			return err
		}
		spill = path
		args = append(args, "-f", spill)
	} else {
		args = append(args, text)
	}

	proc, err := c.runner.Start(c.enginePath, args...)
	if err != nil {
		if spill != "" {
			os.Remove(spill)
		}
		return fmt.Errorf("start speech engine: %w", err)
	}

	h := &handle{pid: proc.Pid(), state: StateRunning, proc: proc, spill: spill}
	c.h = h
	c.gen++

	logrus.WithFields(logrus.Fields{
		"pid":   h.pid,
		"speed": speed,
		"spill": spill != "",
	}).Debug("speech engine started")

	go c.reap(h, c.gen)
	return nil
}

// Terminate force-kills the engine process and clears the handle. With
// suppressMissing set it is a no-op when nothing is running, which is
// what replacement and shutdown paths want.
func (c *Controller) Terminate(suppressMissing bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.h == nil {
		if suppressMissing {
			return nil
		}
		return ErrNoActiveProcess
	}
	c.killLocked()
	return nil
}

// killLocked hard-kills the current process and clears the handle. The
// engine may have exited in the interim, so an already-finished error
// is not a failure. Caller holds c.mu.
func (c *Controller) killLocked() {
	h := c.h
	if h == nil {
		return
	}
	if err := h.proc.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		logrus.WithError(err).WithField("pid", h.pid).Warn("kill speech engine")
	}
	h.state = StateTerminated
	c.h = nil
}

// reap waits for the engine to exit, clears the handle if it is still
// current and removes the spill file. A respawn bumps the generation,
// so a stale reaper never clears its successor's handle.
func (c *Controller) reap(h *handle, gen int) {
	// The exit status of a finished or killed engine is noise.
	_ = h.proc.Wait()

	c.mu.Lock()
	if c.gen == gen && c.h == h {
		h.state = StateTerminated
		c.h = nil
	}
	c.mu.Unlock()

	if h.spill != "" {
		if err := os.Remove(h.spill); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).WithField("path", h.spill).Warn("remove spill file")
		}
	}
}

// writeSpill writes an oversized payload to a fresh temp file the
// engine reads with -f.
func writeSpill(text string) (string, error) {
	f, err := os.CreateTemp("", "readaloud-*.txt")
	if err != nil {
		return "", fmt.Errorf("create spill file: %w", err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write spill file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close spill file: %w", err)
	}
	return f.Name(), nil
}
