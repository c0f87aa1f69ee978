// Package scaffold runs the create-tap-react session: pick a template, choose
// the project directory, download the template into it, install dependencies,
// and report the next steps.
package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ariel-frischer/create-tap-react/internal/build"
	"github.com/ariel-frischer/create-tap-react/internal/catalog"
	clierrors "github.com/ariel-frischer/create-tap-react/internal/errors"
	"github.com/ariel-frischer/create-tap-react/internal/pkgmanager"
	"github.com/ariel-frischer/create-tap-react/internal/progress"
	"github.com/ariel-frischer/create-tap-react/internal/prompt"
	"github.com/ariel-frischer/create-tap-react/internal/report"
	"github.com/fatih/color"
)

// TemplateFetcher downloads a template repository into a directory.
type TemplateFetcher interface {
	Fetch(ctx context.Context, repo, dest string) error
}

// DependencyInstaller installs a project's dependencies and reports the
// package manager it used.
type DependencyInstaller interface {
	Install(ctx context.Context, dir string) (pkgmanager.Manager, error)
}

// Workflow holds everything one scaffolding session needs.
type Workflow struct {
	Catalog   *catalog.Catalog
	Prompter  prompt.Prompter
	Fetcher   TemplateFetcher
	Installer DependencyInstaller

	// Out receives all user-facing output.
	Out io.Writer
	// FS defaults to OSFS.
	FS TargetFS
	// Getwd defaults to os.Getwd.
	Getwd func() (string, error)

	DefaultProjectName string
	SkipInstall        bool
	// Terminal controls spinner rendering.
	Terminal progress.TerminalCapabilities
}

// Run executes the session. It returns ErrCancelled when the user declines
// a non-empty directory, prompt.ErrInterrupted when input ends, and a fetch
// error when the template cannot be downloaded. Install failures are reported
// and do not fail the run.
func (w *Workflow) Run(ctx context.Context) error {
	w.printWelcome()

	tmpl, err := SelectTemplate(ctx, w.Prompter, w.Catalog, w.Out)
	if err != nil {
		return err
	}

	cwd, err := w.getwd()
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "determining working directory")
	}

	target, err := PrepareTarget(ctx, w.Prompter, w.fs(), cwd, w.DefaultProjectName)
	if err != nil {
		return err
	}

	fmt.Fprintf(w.Out, "\nCreating project in %s...\n", color.CyanString(target.DisplayName))
	fmt.Fprintf(w.Out, "Using template: %s\n", color.GreenString(tmpl.Name))

	if err := w.fetch(ctx, tmpl, target); err != nil {
		return err
	}

	manager := w.install(ctx, target)

	report.Print(w.Out, report.Summary{
		Dir:         target.Dir,
		ProjectName: target.ProjectName,
		Manager:     manager,
	})
	return nil
}

func (w *Workflow) printWelcome() {
	fmt.Fprintf(w.Out, "\n%s\n\n", color.New(color.FgCyan, color.Bold).Sprintf("Welcome to %s!", build.CLIName))
	fmt.Fprintf(w.Out, "%s\n\n", color.HiBlackString("Create modern applications with pre-configured templates"))
}

func (w *Workflow) fetch(ctx context.Context, tmpl catalog.Template, target Target) error {
	spin := progress.NewSpinner(w.Out, w.Terminal)
	spin.Start("Downloading template...")

	if err := w.Fetcher.Fetch(ctx, tmpl.Repo, target.Dir); err != nil {
		spin.Fail("Failed to download template")
		return clierrors.TemplateFetchFailed(tmpl.Repo, err)
	}

	spin.Succeed("Template downloaded successfully!")
	return nil
}

// install runs the installer and returns the manager used. The manager is
// still detected when installation is skipped so the report can name it.
func (w *Workflow) install(ctx context.Context, target Target) pkgmanager.Manager {
	spin := progress.NewSpinner(w.Out, w.Terminal)
	if w.SkipInstall {
		manager := pkgmanager.Detect(target.Dir)
		spin.Warn("Skipping dependency installation (skip_install is set)")
		return manager
	}

	spin.Start("Installing dependencies...")

	manager, err := w.Installer.Install(ctx, target.Dir)
	if err != nil {
		spin.Fail("Failed to install dependencies")
		fmt.Fprintf(w.Out, "\n%s\n", color.YellowString("You can install them manually later by running:"))
		fmt.Fprintf(w.Out, "%s\n", color.CyanString("  cd %s", target.ProjectName))
		fmt.Fprintf(w.Out, "%s\n", color.CyanString("  npm install"))
		return manager
	}

	spin.Succeed(fmt.Sprintf("Dependencies installed with %s!", manager))
	return manager
}

func (w *Workflow) getwd() (string, error) {
	if w.Getwd != nil {
		return w.Getwd()
	}
	return os.Getwd()
}

func (w *Workflow) fs() TargetFS {
	if w.FS != nil {
		return w.FS
	}
	return OSFS{}
}
