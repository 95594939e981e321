// Package checker reconciles declared dependencies against what each package
// manager reports as installed, and installs when anything is missing.
package checker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethanolivertroy/depcheck/internal/clients"
	"github.com/ethanolivertroy/depcheck/internal/models"
	"github.com/ethanolivertroy/depcheck/internal/parsers"
	"github.com/ethanolivertroy/depcheck/internal/runner"
	"github.com/rs/zerolog"
)

// Checker orchestrates the npm and pip dependency checks
type Checker struct {
	config *models.Config
	runner runner.Runner
	out    io.Writer
	errOut io.Writer
	log    zerolog.Logger
}

// New creates a Checker. Progress lines go to out; captured tool output from
// failed commands is echoed to out and errOut.
func New(config *models.Config, r runner.Runner, out, errOut io.Writer, log zerolog.Logger) *Checker {
	return &Checker{
		config: config,
		runner: r,
		out:    out,
		errOut: errOut,
		log:    log,
	}
}

// CheckAll runs the npm check and then the pip check. A hard failure stops
// the run unless the config asks for independent checks, in which case
// every ecosystem runs and the failures are joined. Ecosystems left unrun
// are reported with StatusNotChecked.
func (c *Checker) CheckAll(ctx context.Context) ([]models.EcosystemResult, error) {
	checks := []struct {
		eco models.Ecosystem
		run func(context.Context) (models.EcosystemResult, error)
	}{
		{models.EcosystemNpm, c.CheckNpm},
		{models.EcosystemPip, c.CheckPip},
	}

	var results []models.EcosystemResult
	var errs []error
	stopped := false
	for _, check := range checks {
		if stopped {
			results = append(results, models.EcosystemResult{Ecosystem: check.eco, Status: models.StatusNotChecked})
			continue
		}
		res, err := check.run(ctx)
		results = append(results, res)
		c.log.Info().Str("ecosystem", string(res.Ecosystem)).Stringer("status", res.Status).Msg("check complete")
		if err != nil {
			errs = append(errs, err)
			stopped = !c.config.Independent
		}
	}

	return results, errors.Join(errs...)
}

// CheckNpm verifies package.json dependencies against `npm ls`
func (c *Checker) CheckNpm(ctx context.Context) (models.EcosystemResult, error) {
	eco := models.EcosystemNpm
	path := c.manifestPath(c.config.PackageJSON)
	name := filepath.Base(path)
	res := models.EcosystemResult{Ecosystem: eco, Manifest: path}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		c.printf(eco, "%s not found. Skipping npm dependency check.", name)
		res.Status = models.StatusSkipped
		return res, nil
	}
	if err != nil {
		return fail(res, models.NewCheckError(eco, models.KindInvalidManifest, "failed to read "+name, err))
	}

	npm := clients.NewNPMClient(c.runner, c.config.NpmPath, c.config.RootDir)
	if err := npm.CheckAvailable(); err != nil {
		return fail(res, err)
	}

	required, err := parsers.ParseNodeManifest(content)
	if err != nil {
		return fail(res, models.NewCheckError(eco, models.KindInvalidManifest, name+" is invalid JSON", err))
	}
	res.Required = required

	if len(required) == 0 {
		c.printf(eco, "No dependencies listed in %s.", name)
		res.Status = models.StatusSatisfied
		return res, nil
	}

	c.printf(eco, "Checking installed Node dependencies...")
	installed, err := npm.ListInstalled(ctx)
	if err != nil {
		return fail(res, err)
	}

	res.Missing = Missing(required, installed)
	if len(res.Missing) == 0 {
		c.printf(eco, "All npm dependencies are present.")
		res.Status = models.StatusSatisfied
		return res, nil
	}

	c.printf(eco, "Missing dependencies detected: %s", strings.Join(res.Missing, ", "))
	c.printf(eco, "Running npm install...")
	if out, err := npm.Install(ctx); err != nil {
		c.echo(out)
		return fail(res, err)
	}
	c.printf(eco, "npm dependencies installed successfully.")
	res.Status = models.StatusInstalled
	return res, nil
}

// CheckPip verifies requirements.txt entries with one `pip show` per name
func (c *Checker) CheckPip(ctx context.Context) (models.EcosystemResult, error) {
	eco := models.EcosystemPip
	path := c.manifestPath(c.config.Requirements)
	name := filepath.Base(path)
	res := models.EcosystemResult{Ecosystem: eco, Manifest: path}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		c.printf(eco, "%s not found. Skipping pip dependency check.", name)
		res.Status = models.StatusSkipped
		return res, nil
	}
	if err != nil {
		return fail(res, models.NewCheckError(eco, models.KindInvalidManifest, "failed to read "+name, err))
	}

	python := clients.ResolvePython(c.runner, c.config.PythonPath)
	c.log.Debug().Str("python", python).Msg("resolved interpreter")
	pip := clients.NewPipClient(c.runner, python, c.config.RootDir)
	if out, err := pip.Version(ctx); err != nil {
		c.echo(out)
		return fail(res, err)
	}

	required := parsers.ParseRequirements(content)
	res.Required = required
	if len(required) == 0 {
		c.printf(eco, "No installable dependencies found in %s.", name)
		res.Status = models.StatusSatisfied
		return res, nil
	}

	c.printf(eco, "Checking installed Python dependencies...")
	installed, err := pip.InstalledSet(ctx, required)
	if err != nil {
		return fail(res, err)
	}

	res.Missing = Missing(required, installed)
	if len(res.Missing) == 0 {
		c.printf(eco, "All Python dependencies are present.")
		res.Status = models.StatusSatisfied
		return res, nil
	}

	c.printf(eco, "Missing dependencies detected: %s", strings.Join(res.Missing, ", "))
	c.printf(eco, "Running pip install -r %s...", name)
	if out, err := pip.InstallRequirements(ctx, path); err != nil {
		c.echo(out)
		return fail(res, err)
	}
	c.printf(eco, "Python dependencies installed successfully.")
	res.Status = models.StatusInstalled
	return res, nil
}

func (c *Checker) manifestPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.config.RootDir, p)
}

func (c *Checker) printf(eco models.Ecosystem, format string, args ...any) {
	fmt.Fprintf(c.out, "%s %s\n", eco.Label(), fmt.Sprintf(format, args...))
}

// echo surfaces captured output from a failed command
func (c *Checker) echo(res runner.Result) {
	if out := strings.TrimRight(string(res.Stdout), "\n"); out != "" {
		fmt.Fprintln(c.out, out)
	}
	if out := strings.TrimRight(string(res.Stderr), "\n"); out != "" {
		fmt.Fprintln(c.errOut, out)
	}
}

func fail(res models.EcosystemResult, err error) (models.EcosystemResult, error) {
	res.Status = models.StatusFailed
	res.Error = err.Error()
	return res, err
}
