package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ethanolivertroy/depcheck/internal/checker"
	"github.com/ethanolivertroy/depcheck/internal/logging"
	"github.com/ethanolivertroy/depcheck/internal/models"
	"github.com/ethanolivertroy/depcheck/internal/reporter"
	"github.com/ethanolivertroy/depcheck/internal/runner"
	"github.com/spf13/cobra"
)

var (
	flagConfig       string
	flagPackageJSON  string
	flagRequirements string
	flagNpm          string
	flagPython       string
	flagFormat       string
	flagLogLevel     string
	flagIndependent  bool
)

// checkFailed marks a run that completed but found a hard failure
type checkFailed struct {
	err error
}

func (e *checkFailed) Error() string { return e.err.Error() }
func (e *checkFailed) Unwrap() error { return e.err }

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "depcheck [root]",
	Short: "Make sure npm and pip dependencies are installed before startup",
	Long: `depcheck verifies that the dependencies declared in package.json and
requirements.txt are installed, and runs the matching install command when
any are missing.

  - npm: names from dependencies and devDependencies are compared with
    "npm ls --depth=0 --json"; missing names trigger "npm install".
  - pip: each requirement is probed with "python -m pip show"; missing
    names trigger "python -m pip install -r requirements.txt".

A manifest that does not exist is skipped. The exit code is 0 when every
dependency is present or was installed, and 1 on any hard failure.

Examples:
  # Check the current directory
  depcheck

  # Check another project
  depcheck ./services/api

  # Run the pip check even if the npm check fails
  depcheck --independent

  # Machine-readable summary
  depcheck --format json`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCheck,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var failed *checkFailed
	if errors.As(err, &failed) {
		os.Exit(1)
	}
	fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	os.Exit(2)
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Config file (default: <root>/"+models.ConfigFileName+" if present)")
	rootCmd.Flags().StringVar(&flagPackageJSON, "package-json", "", "Node manifest path, relative to root (default: package.json)")
	rootCmd.Flags().StringVar(&flagRequirements, "requirements", "", "Python requirements path, relative to root (default: requirements.txt)")
	rootCmd.Flags().StringVar(&flagNpm, "npm", "", "npm executable (default: npm)")
	rootCmd.Flags().StringVar(&flagPython, "python", "", "Python interpreter (default: python3 or python on PATH)")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Summary format: terminal, json")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Diagnostic log level: trace, debug, info, warn, error, off")
	rootCmd.Flags().BoolVar(&flagIndependent, "independent", false, "Run every ecosystem check even after one fails")
}

func runCheck(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	log := logging.New(stderr, config.LogLevel)
	log.Debug().Str("root", config.RootDir).Str("format", config.OutputFormat).Msg("config resolved")

	// Keep stdout clean for machine-readable summaries
	progress := stdout
	if config.OutputFormat == "json" {
		progress = stderr
	}

	c := checker.New(config, runner.NewExecRunner(log), progress, stderr, log)
	results, checkErr := c.CheckAll(cmd.Context())

	rep := reporter.Get(config.OutputFormat)
	output, err := rep.Report(results)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	if _, err := stdout.Write(output); err != nil {
		return err
	}

	if checkErr != nil {
		printFailure(stderr, checkErr)
		return &checkFailed{err: checkErr}
	}
	return nil
}

// loadConfig layers flags over the config file over defaults
func loadConfig(cmd *cobra.Command, args []string) (*models.Config, error) {
	config := models.DefaultConfig()
	if len(args) > 0 {
		config.RootDir = args[0]
	}
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", config.RootDir, err)
	}
	config.RootDir = root

	path := flagConfig
	if path == "" {
		candidate := filepath.Join(root, models.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", candidate, err)
		}
	}
	if path != "" {
		if err := config.LoadFile(path); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("package-json") {
		config.PackageJSON = flagPackageJSON
	}
	if flags.Changed("requirements") {
		config.Requirements = flagRequirements
	}
	if flags.Changed("npm") {
		config.NpmPath = flagNpm
	}
	if flags.Changed("python") {
		config.PythonPath = flagPython
	}
	if flags.Changed("format") {
		config.OutputFormat = flagFormat
	}
	if flags.Changed("log-level") {
		config.LogLevel = flagLogLevel
	}
	if flags.Changed("independent") {
		config.Independent = flagIndependent
	}

	switch config.OutputFormat {
	case "terminal", "json":
	default:
		return nil, fmt.Errorf("unknown format %q: want terminal or json", config.OutputFormat)
	}
	if _, ok := logging.ParseLevel(config.LogLevel); !ok {
		return nil, fmt.Errorf("unknown log level %q", config.LogLevel)
	}
	return config, nil
}

// printFailure writes one summary line per hard failure
func printFailure(w io.Writer, err error) {
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		fmt.Fprintf(w, "Dependency check failed: %s\n", e)
	}
}
