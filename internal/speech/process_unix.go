//go:build unix

package speech

// Process is the controller's view of one started engine process. On
// platforms with suspend/continue signals it carries the suspend
// surface as well.
type Process interface {
	Pid() int
	Kill() error
	Wait() error
	// Suspend hard-suspends the process (SIGSTOP semantics; the
	// catchable stop variant does not reliably halt the engine).
	Suspend() error
	// Resume continues a suspended process.
	Resume() error
	// Stopped reports whether the OS currently shows the process as
	// suspended. Returns errStatusUnknown where the OS offers no such
	// report.
	Stopped() (bool, error)
}
