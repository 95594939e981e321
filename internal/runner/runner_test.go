package runner

import (
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return sh
}

func TestExecRunnerCapturesOutputAndExitCode(t *testing.T) {
	sh := requireShell(t)
	r := NewExecRunner(zerolog.Nop())

	res, err := r.Run(context.Background(), t.TempDir(), sh, "-c", "echo out; echo err >&2; exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.False(t, res.Success())
	assert.Equal(t, "out\n", string(res.Stdout))
	assert.Equal(t, "err\n", string(res.Stderr))
}

func TestExecRunnerRunsInDir(t *testing.T) {
	sh := requireShell(t)
	dir := t.TempDir()

	res, err := NewExecRunner(zerolog.Nop()).Run(context.Background(), dir, sh, "-c", "pwd -P")
	require.NoError(t, err)
	assert.True(t, res.Success())
	assert.NotEmpty(t, res.Stdout)
}

func TestExecRunnerLaunchFailure(t *testing.T) {
	_, err := NewExecRunner(zerolog.Nop()).Run(context.Background(), "", "definitely-not-a-real-tool-8d1f")
	assert.Error(t, err)
}
