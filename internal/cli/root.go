// Package cli implements the create-tap-react command line: it loads
// configuration, runs the scaffold workflow, and turns its outcome into
// output and an exit status.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/ariel-frischer/create-tap-react/internal/build"
	"github.com/ariel-frischer/create-tap-react/internal/catalog"
	"github.com/ariel-frischer/create-tap-react/internal/config"
	clierrors "github.com/ariel-frischer/create-tap-react/internal/errors"
	"github.com/ariel-frischer/create-tap-react/internal/fetch"
	"github.com/ariel-frischer/create-tap-react/internal/pkgmanager"
	"github.com/ariel-frischer/create-tap-react/internal/progress"
	"github.com/ariel-frischer/create-tap-react/internal/prompt"
	"github.com/ariel-frischer/create-tap-react/internal/report"
	"github.com/ariel-frischer/create-tap-react/internal/scaffold"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   build.CLIName,
	Short: "Create a React project from a starter template",
	Long: `create-tap-react scaffolds a new React project from a curated starter template.

It asks which template to use and where to create the project, downloads the
template, installs dependencies with npm, yarn, or pnpm, and prints the
commands to start developing.

Configuration is read from ~/.config/create-tap-react/config.yml and from
TAPREACT_* environment variables (for example TAPREACT_SKIP_INSTALL=true).

Available settings:

` + indent(config.GetDefaultConfigTemplate(), "  "),
	Example: `  # Start an interactive session
  create-tap-react

  # Scaffold without installing dependencies
  TAPREACT_SKIP_INSTALL=true create-tap-react`,
	Version:       build.VersionString(),
	Args:          noArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), streams{
			in:     cmd.InOrStdin(),
			out:    cmd.OutOrStdout(),
			errOut: cmd.ErrOrStderr(),
		}, config.Load)
	},
}

func init() {
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierrors.Wrap(err, clierrors.Input, "Run 'create-tap-react --help' for usage")
	})
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return clierrors.NewInputError("create-tap-react takes no arguments",
			"Run create-tap-react without arguments and answer the prompts")
	}
	return nil
}

type streams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// run loads configuration and executes one scaffolding session.
func run(ctx context.Context, s streams, loadConfig func() (*config.Configuration, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		if clierrors.IsCLIError(err) {
			return err
		}
		return clierrors.WrapWithMessage(err, clierrors.Configuration, "loading configuration")
	}

	w, err := newWorkflow(cfg, s)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

// newWorkflow builds the scaffold workflow from cfg and installs the debug
// loggers when debug output is enabled.
func newWorkflow(cfg *config.Configuration, s streams) (*scaffold.Workflow, error) {
	if err := scaffold.ValidateProjectName(cfg.DefaultProjectName); err != nil {
		return nil, clierrors.InvalidConfigValue("default_project_name", cfg.DefaultProjectName, err.Error())
	}

	if cfg.Debug {
		logger := debugPrinter(s.errOut)
		fetch.SetDebugLogger(logger)
		pkgmanager.SetDebugLogger(logger)
		report.SetDebugLogger(logger)
		logger("[config] remote_host=%s fetch_timeout=%s install_timeout=%s skip_install=%t",
			cfg.RemoteHost, cfg.FetchTimeout, cfg.InstallTimeout, cfg.SkipInstall)
	}

	caps := progress.DetectTerminalCapabilities()
	if cfg.ASCII {
		caps.SupportsUnicode = false
	}

	return &scaffold.Workflow{
		Catalog:            catalog.Default(),
		Prompter:           prompt.Auto(s.in, s.out),
		Fetcher:            fetch.New(cfg.RemoteHost, cfg.FetchTimeout),
		Installer:          &pkgmanager.Installer{Timeout: cfg.InstallTimeout},
		Out:                s.out,
		DefaultProjectName: cfg.DefaultProjectName,
		SkipInstall:        cfg.SkipInstall,
		Terminal:           caps,
	}, nil
}
