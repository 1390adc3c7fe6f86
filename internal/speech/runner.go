package speech

import (
	"os/exec"
)

// Runner starts engine processes. The exec-backed runner is the
// production implementation; tests substitute a scripted one.
type Runner interface {
	Start(path string, args ...string) (Process, error)
}

type execRunner struct{}

// NewExecRunner returns the os/exec backed runner.
func NewExecRunner() Runner {
	return execRunner{}
}

func (execRunner) Start(path string, args ...string) (Process, error) {
	cmd := exec.Command(path, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd}, nil
}

// execProcess wraps the started command. Speech is audible, not
// returned, so no output is captured.
type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Pid() int {
	return p.cmd.Process.Pid
}

func (p *execProcess) Kill() error {
	return p.cmd.Process.Kill()
}

func (p *execProcess) Wait() error {
	return p.cmd.Wait()
}
