//go:build integration && !windows

package rod_test

import (
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/hnlist/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Close_KillsLauncherProcess(t *testing.T) {
	t.Parallel()

	r, err := rod.NewRenderer()
	require.NoError(t, err)

	pid := r.LauncherPID()
	require.NotZero(t, pid, "launcher PID should be set")

	// Signal 0 checks for the process without affecting it.
	err = syscall.Kill(pid, syscall.Signal(0))
	require.NoError(t, err, "launcher process should be running before Close()")

	require.NoError(t, r.Close())

	time.Sleep(100 * time.Millisecond)

	err = syscall.Kill(pid, syscall.Signal(0))
	assert.Error(t, err, "launcher process should be terminated after Close()")
}
