//go:build windows

package speech

// Process is the controller's view of one started engine process.
// Windows has no process suspend/continue signals, so the suspend
// surface does not exist here.
type Process interface {
	Pid() int
	Kill() error
	Wait() error
}
