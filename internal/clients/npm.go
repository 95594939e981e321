package clients

import (
	"context"

	"github.com/ethanolivertroy/depcheck/internal/models"
	"github.com/ethanolivertroy/depcheck/internal/parsers"
	"github.com/ethanolivertroy/depcheck/internal/runner"
)

// NPMClient queries and installs Node dependencies through npm
type NPMClient struct {
	runner runner.Runner
	path   string
	dir    string
}

// NewNPMClient creates an npm client that runs path inside dir
func NewNPMClient(r runner.Runner, path, dir string) *NPMClient {
	if path == "" {
		path = "npm"
	}
	return &NPMClient{runner: r, path: path, dir: dir}
}

// CheckAvailable verifies that the npm executable resolves on PATH
func (c *NPMClient) CheckAvailable() error {
	resolved, err := c.runner.LookPath(c.path)
	if err != nil {
		return models.NewCheckError(models.EcosystemNpm, models.KindToolUnavailable,
			c.path+" is not installed or not available in PATH.", nil)
	}
	c.path = resolved
	return nil
}

// ListInstalled returns the top-level packages npm reports as installed.
// npm exits non-zero when anything is missing, so only a launch failure
// is an error; unreadable output counts as nothing installed.
func (c *NPMClient) ListInstalled(ctx context.Context) (map[string]struct{}, error) {
	res, err := c.runner.Run(ctx, c.dir, c.path, "ls", "--depth=0", "--json")
	if err != nil {
		return nil, models.NewCheckError(models.EcosystemNpm, models.KindLaunchFailed,
			"Failed to execute npm ls", err)
	}
	return parsers.ParseNpmList(res.Stdout), nil
}

// Install runs a full npm install from package.json. The captured result is
// returned alongside any install failure so callers can surface it.
func (c *NPMClient) Install(ctx context.Context) (runner.Result, error) {
	res, err := c.runner.Run(ctx, c.dir, c.path, "install")
	if err != nil {
		return res, models.NewCheckError(models.EcosystemNpm, models.KindLaunchFailed,
			"Failed to execute npm install", err)
	}
	if !res.Success() {
		return res, models.NewCheckError(models.EcosystemNpm, models.KindInstallFailed,
			"npm install failed.", nil)
	}
	return res, nil
}
