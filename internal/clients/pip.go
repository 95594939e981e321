package clients

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ethanolivertroy/depcheck/internal/models"
	"github.com/ethanolivertroy/depcheck/internal/runner"
)

// pythonCandidates are tried in order when no interpreter is configured
var pythonCandidates = []string{"python3", "python"}

// ResolvePython returns the configured interpreter, or the first candidate
// found on PATH. It never fails; a bad choice surfaces at launch.
func ResolvePython(r runner.Runner, configured string) string {
	if configured != "" {
		return configured
	}
	for _, name := range pythonCandidates {
		if path, err := r.LookPath(name); err == nil {
			return path
		}
	}
	return pythonCandidates[0]
}

// PipClient queries and installs Python dependencies through `python -m pip`
type PipClient struct {
	runner runner.Runner
	python string
	dir    string
}

// NewPipClient creates a pip client for the given interpreter
func NewPipClient(r runner.Runner, python, dir string) *PipClient {
	return &PipClient{runner: r, python: python, dir: dir}
}

func (c *PipClient) run(ctx context.Context, description string, args ...string) (runner.Result, error) {
	res, err := c.runner.Run(ctx, c.dir, c.python, append([]string{"-m", "pip"}, args...)...)
	if err != nil {
		return res, models.NewCheckError(models.EcosystemPip, models.KindLaunchFailed,
			"Failed to execute "+description, err)
	}
	return res, nil
}

// Version checks that pip is invocable by the interpreter
func (c *PipClient) Version(ctx context.Context) (runner.Result, error) {
	res, err := c.run(ctx, "python -m pip --version", "--version")
	if err != nil {
		return res, err
	}
	if !res.Success() {
		return res, models.NewCheckError(models.EcosystemPip, models.KindToolUnavailable,
			"pip is not available for this Python interpreter.", nil)
	}
	return res, nil
}

// Show reports whether `pip show name` succeeds
func (c *PipClient) Show(ctx context.Context, name string) (bool, error) {
	res, err := c.run(ctx, "pip show "+name, "show", name)
	if err != nil {
		return false, err
	}
	return res.Success(), nil
}

// InstalledSet probes each name with its own `pip show` and returns the
// names that are installed. pip has no bulk listing we can rely on across
// environments, so this costs one subprocess per name.
func (c *PipClient) InstalledSet(ctx context.Context, names []string) (map[string]struct{}, error) {
	installed := make(map[string]struct{}, len(names))
	probed := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, seen := probed[name]; seen {
			continue
		}
		probed[name] = struct{}{}
		ok, err := c.Show(ctx, name)
		if err != nil {
			return nil, err
		}
		if ok {
			installed[name] = struct{}{}
		}
	}
	return installed, nil
}

// InstallRequirements runs `pip install -r path`
func (c *PipClient) InstallRequirements(ctx context.Context, path string) (runner.Result, error) {
	res, err := c.run(ctx, "pip install -r "+filepath.Base(path), "install", "-r", path)
	if err != nil {
		return res, err
	}
	if !res.Success() {
		return res, models.NewCheckError(models.EcosystemPip, models.KindInstallFailed,
			fmt.Sprintf("pip install -r %s failed.", filepath.Base(path)), nil)
	}
	return res, nil
}
