package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	clierrors "github.com/ariel-frischer/create-tap-react/internal/errors"
	"github.com/ariel-frischer/create-tap-react/internal/prompt"
	"github.com/fatih/color"
)

// CurrentDir is the project name that scaffolds into the working directory.
const CurrentDir = "."

var projectNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// Project name validation failures. The text is shown to the user verbatim.
var (
	ErrEmptyProjectName   = errors.New("Project name cannot be empty!")
	ErrInvalidProjectName = errors.New("Project name can only contain letters, numbers, hyphens, underscores, and dots!")
)

// ErrCancelled is returned when the user declines to continue into a
// non-empty directory.
var ErrCancelled = errors.New("operation cancelled")

// ValidateProjectName checks a project name as typed. Whitespace-only input
// counts as empty; any other whitespace is an invalid character.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyProjectName
	}
	if !projectNamePattern.MatchString(name) {
		return ErrInvalidProjectName
	}
	return nil
}

// Target is where the project is created.
type Target struct {
	// ProjectName is the validated name as entered.
	ProjectName string
	// Dir is the absolute project directory.
	Dir string
	// DisplayName is how the target is shown to the user.
	DisplayName string
}

// IsCurrentDir reports whether the project is created in the working directory.
func (t Target) IsCurrentDir() bool {
	return t.ProjectName == CurrentDir
}

// ResolveTarget computes the target for name relative to cwd. It does not
// touch the file system.
func ResolveTarget(name, cwd string) (Target, error) {
	if name == CurrentDir {
		return Target{ProjectName: name, Dir: cwd, DisplayName: "current directory"}, nil
	}

	dir := name
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cwd, name)
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return Target{}, fmt.Errorf("resolving %s: %w", name, err)
	}
	return Target{ProjectName: name, Dir: dir, DisplayName: name}, nil
}

// TargetFS is the file system access PrepareTarget needs.
type TargetFS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error
}

// OSFS implements TargetFS with the os package.
type OSFS struct{}

func (OSFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }
func (OSFS) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }
func (OSFS) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

// PrepareTarget asks for the project name, confirms before using a non-empty
// directory, and creates the directory if it is missing. The current
// directory is used as is.
func PrepareTarget(ctx context.Context, p prompt.Prompter, fsys TargetFS, cwd, defaultName string) (Target, error) {
	name, err := p.Input(ctx, "Project name:", defaultName, ValidateProjectName)
	if err != nil {
		return Target{}, err
	}

	target, err := ResolveTarget(name, cwd)
	if err != nil {
		return Target{}, clierrors.Wrap(err, clierrors.Runtime)
	}
	if target.IsCurrentDir() {
		return target, nil
	}

	info, err := fsys.Stat(target.Dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := fsys.MkdirAll(target.Dir, 0o755); err != nil {
			return Target{}, clierrors.TargetNotCreated(target.Dir, err)
		}
		return target, nil
	case err != nil:
		return Target{}, clierrors.TargetNotCreated(target.Dir, err)
	case !info.IsDir():
		return Target{}, clierrors.NewRuntimeError(
			fmt.Sprintf("%s exists and is not a directory", target.Dir),
			"Choose another project name or move the file out of the way",
		)
	}

	entries, err := fsys.ReadDir(target.Dir)
	if err != nil {
		return Target{}, clierrors.TargetNotCreated(target.Dir, err)
	}
	if len(entries) == 0 {
		return target, nil
	}

	proceed, err := p.Confirm(ctx, fmt.Sprintf("Directory %s is not empty. Continue anyway?", color.YellowString(name)), false)
	if err != nil {
		return Target{}, err
	}
	if !proceed {
		return Target{}, ErrCancelled
	}
	return target, nil
}
