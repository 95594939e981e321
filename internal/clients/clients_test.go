package clients

import (
	"context"
	"errors"
	"testing"

	"github.com/ethanolivertroy/depcheck/internal/models"
	"github.com/ethanolivertroy/depcheck/internal/runner"
	"github.com/ethanolivertroy/depcheck/internal/runner/runnertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPMClientResolvesPath(t *testing.T) {
	fake := &runnertest.Fake{Paths: map[string]string{"npm": "/usr/local/bin/npm"}}
	c := NewNPMClient(fake, "", "/srv/app")

	require.NoError(t, c.CheckAvailable())
	_, err := c.ListInstalled(context.Background())
	require.NoError(t, err)

	require.Len(t, fake.Calls, 1)
	assert.Equal(t, "/usr/local/bin/npm", fake.Calls[0].Name)
	assert.Equal(t, "/srv/app", fake.Calls[0].Dir)
}

func TestNPMClientListInstalledIgnoresExitCode(t *testing.T) {
	fake := (&runnertest.Fake{}).On(runnertest.Response{Result: runner.Result{
		Stdout:   []byte(`{"dependencies":{"react":{"version":"18.2.0"}}}`),
		ExitCode: 1,
	}}, "npm", "ls", "--depth=0", "--json")

	installed, err := NewNPMClient(fake, "npm", "").ListInstalled(context.Background())
	require.NoError(t, err)
	assert.Contains(t, installed, "react")
}

func TestPipClientInstalledSetProbesEachNameOnce(t *testing.T) {
	fake := (&runnertest.Fake{}).
		On(runnertest.Response{Result: runner.Result{ExitCode: 1}}, "py", "-m", "pip", "show", "missing")

	installed, err := NewPipClient(fake, "py", "").InstalledSet(context.Background(), []string{"present", "missing", "missing", "present"})
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"present": {}}, installed)
	assert.Equal(t, []string{"py -m pip show present", "py -m pip show missing"}, fake.Lines())
}

func TestPipClientLaunchFailure(t *testing.T) {
	fake := (&runnertest.Fake{}).
		On(runnertest.Response{Err: errors.New("executable file not found")}, "py", "-m", "pip", "--version")

	_, err := NewPipClient(fake, "py", "").Version(context.Background())
	var ce *models.CheckError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, models.KindLaunchFailed, ce.Kind)
	assert.Equal(t, "[pip] Failed to execute python -m pip --version: executable file not found", err.Error())
}

func TestResolvePython(t *testing.T) {
	fake := &runnertest.Fake{Paths: map[string]string{"python": "/usr/bin/python"}}

	assert.Equal(t, "/opt/py/bin/python3.12", ResolvePython(fake, "/opt/py/bin/python3.12"))
	assert.Equal(t, "/usr/bin/python", ResolvePython(fake, ""))
	assert.Equal(t, "python3", ResolvePython(&runnertest.Fake{}, ""))
}
