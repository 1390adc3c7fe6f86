//go:build unix

package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPauseResume(t *testing.T) {
	runner := &fakeRunner{}
	c := newTestController(runner, nil)

	require.NoError(t, c.Spawn("text", 175))
	_, proc := runner.last()

	require.NoError(t, c.Pause())
	assert.Equal(t, StatePaused, c.State())
	stopped, err := proc.Stopped()
	require.NoError(t, err)
	assert.True(t, stopped)

	require.NoError(t, c.Resume())
	assert.Equal(t, StateRunning, c.State())
	stopped, err = proc.Stopped()
	require.NoError(t, err)
	assert.False(t, stopped)
}

// Resuming an engine that was never paused keeps it running.
func TestResumeWhileRunning(t *testing.T) {
	runner := &fakeRunner{}
	c := newTestController(runner, nil)

	require.NoError(t, c.Spawn("text", 175))
	require.NoError(t, c.Resume())
	assert.Equal(t, StateRunning, c.State())
}

func TestToggleTwiceRoundTrips(t *testing.T) {
	runner := &fakeRunner{}
	c := newTestController(runner, nil)

	require.NoError(t, c.Spawn("text", 175))

	require.NoError(t, c.Toggle())
	assert.Equal(t, StatePaused, c.State())

	require.NoError(t, c.Toggle())
	assert.Equal(t, StateRunning, c.State())
}

// Toggle trusts the OS report over the handle's bookkeeping.
func TestToggleFollowsProcessStatus(t *testing.T) {
	runner := &fakeRunner{}
	c := newTestController(runner, nil)

	require.NoError(t, c.Spawn("text", 175))
	_, proc := runner.last()

	// Suspended behind the controller's back, for example by the shell.
	require.NoError(t, proc.Suspend())

	require.NoError(t, c.Toggle())
	stopped, err := proc.Stopped()
	require.NoError(t, err)
	assert.False(t, stopped)
	assert.Equal(t, StateRunning, c.State())
}

func TestPauseSurfaceIdleErrors(t *testing.T) {
	c := newTestController(&fakeRunner{}, nil)

	assert.ErrorIs(t, c.Pause(), ErrNoActiveProcess)
	assert.ErrorIs(t, c.Resume(), ErrNoActiveProcess)
	assert.ErrorIs(t, c.Toggle(), ErrNoActiveProcess)
}
