//go:build unix

package speech

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"syscall"
)

// errStatusUnknown means the OS offers no run/stopped report for the
// process (no procfs). Callers fall back to their own bookkeeping.
var errStatusUnknown = errors.New("process status unavailable")

// Suspend hard-suspends the engine. SIGTSTP is not enough for this
// process, it must be the uncatchable variant.
func (p *execProcess) Suspend() error {
	return p.cmd.Process.Signal(syscall.SIGSTOP)
}

func (p *execProcess) Resume() error {
	return p.cmd.Process.Signal(syscall.SIGCONT)
}

// Stopped reads the state letter from /proc/<pid>/stat. The comm field
// may contain spaces, so the letter is located after the closing paren.
func (p *execProcess) Stopped() (bool, error) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", p.cmd.Process.Pid))
	if err != nil {
		if os.IsNotExist(err) {
			if _, statErr := os.Stat("/proc/self"); statErr != nil {
				return false, errStatusUnknown
			}
		}
		return false, err
	}
	i := bytes.LastIndexByte(data, ')')
	if i < 0 || i+2 >= len(data) {
		return false, errStatusUnknown
	}
	state := data[i+2]
	return state == 'T' || state == 't', nil
}
