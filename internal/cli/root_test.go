package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/ariel-frischer/create-tap-react/internal/config"
	clierrors "github.com/ariel-frischer/create-tap-react/internal/errors"
	"github.com/ariel-frischer/create-tap-react/internal/fetch"
	"github.com/ariel-frischer/create-tap-react/internal/pkgmanager"
	"github.com/ariel-frischer/create-tap-react/internal/prompt"
	"github.com/ariel-frischer/create-tap-react/internal/report"
	"github.com/ariel-frischer/create-tap-react/internal/scaffold"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func defaultConfig() *config.Configuration {
	return &config.Configuration{
		RemoteHost:         "https://github.com",
		DefaultProjectName: "my-app",
	}
}

func TestRootCmd_Structure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "create-tap-react", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.Contains(t, rootCmd.Long, "  default_project_name: my-app")
	assert.Contains(t, rootCmd.Long, "  skip_install: false")
	assert.NotEmpty(t, rootCmd.Example)
	assert.NotEmpty(t, rootCmd.Version)
	assert.Empty(t, rootCmd.Commands(), "create-tap-react has no subcommands")
}

func TestNoArgs(t *testing.T) {
	t.Parallel()

	assert.NoError(t, noArgs(rootCmd, nil))

	err := noArgs(rootCmd, []string{"my-app"})
	require.Error(t, err)
	assert.True(t, clierrors.IsCategory(err, clierrors.Input))
}

func TestFinish(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err        error
		wantErr    bool
		wantOut    string
		wantErrOut string
	}{
		"success": {},
		"cancelled": {
			err:     scaffold.ErrCancelled,
			wantOut: "\nOperation cancelled\n",
		},
		"interrupted": {
			err:     fmt.Errorf("answering: %w", prompt.ErrInterrupted),
			wantOut: "\n\nGoodbye!\n",
		},
		"fetch failure": {
			err:        clierrors.TemplateFetchFailed("owner/repo", errors.New("repository not found")),
			wantErr:    true,
			wantErrOut: "Error [Fetch Error]: downloading owner/repo: repository not found",
		},
		"unexpected error": {
			err:        errors.New("disk on fire"),
			wantErr:    true,
			wantErrOut: "\nAn unexpected error occurred:\ndisk on fire\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out, errOut bytes.Buffer
			err := finish(tt.err, &out, &errOut)

			if tt.wantErr {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantOut, out.String())
			if tt.wantErrOut == "" {
				assert.Empty(t, errOut.String())
			} else {
				assert.Contains(t, errOut.String(), tt.wantErrOut)
			}
		})
	}
}

func TestExecute_RecoversPanic(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:           "panicky",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(*cobra.Command, []string) error {
			panic("boom")
		},
	}
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})

	var errOut bytes.Buffer
	err := execute(cmd, &errOut)
	require.Error(t, err)
	assert.Contains(t, errOut.String(), "An unexpected error occurred:")
	assert.Contains(t, errOut.String(), "panic: boom")
}

func TestExecute_CancelledIsSuccess(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:           "cancel",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(*cobra.Command, []string) error {
			return scaffold.ErrCancelled
		},
	}
	cmd.SetArgs([]string{})
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, execute(cmd, &bytes.Buffer{}))
	assert.Contains(t, out.String(), "Operation cancelled")
}

func TestNewWorkflow(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.SkipInstall = true
	cfg.ASCII = true

	var out bytes.Buffer
	w, err := newWorkflow(cfg, streams{in: strings.NewReader(""), out: &out, errOut: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.Equal(t, "my-app", w.DefaultProjectName)
	assert.True(t, w.SkipInstall)
	assert.False(t, w.Terminal.SupportsUnicode)
	assert.IsType(t, &prompt.Line{}, w.Prompter)
	assert.Equal(t, 3, w.Catalog.Len())
	assert.Same(t, &out, w.Out)
}

func TestNewWorkflow_DebugRoutesReportDiagnostics(t *testing.T) {
	cfg := defaultConfig()
	cfg.Debug = true
	t.Cleanup(func() {
		fetch.SetDebugLogger(nil)
		pkgmanager.SetDebugLogger(nil)
		report.SetDebugLogger(nil)
	})

	var errOut bytes.Buffer
	_, err := newWorkflow(cfg, streams{in: strings.NewReader(""), out: &bytes.Buffer{}, errOut: &errOut})
	require.NoError(t, err)

	report.Print(&bytes.Buffer{}, report.Summary{Dir: t.TempDir(), ProjectName: "demo", Manager: pkgmanager.NPM})

	assert.Contains(t, errOut.String(), "[debug] [config]")
	assert.Contains(t, errOut.String(), "[debug] [report] reading manifest")
}

func TestNewWorkflow_InvalidDefaultProjectName(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.DefaultProjectName = "my app"

	_, err := newWorkflow(cfg, streams{in: strings.NewReader(""), out: &bytes.Buffer{}, errOut: &bytes.Buffer{}})
	require.Error(t, err)
	assert.True(t, clierrors.IsCategory(err, clierrors.Configuration))
	assert.Contains(t, err.Error(), "default_project_name")
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		loadConfig   func() (*config.Configuration, error)
		wantErr      error
		wantCategory *clierrors.ErrorCategory
		wantOut      string
	}{
		"input closed at first prompt": {
			loadConfig: func() (*config.Configuration, error) { return defaultConfig(), nil },
			wantErr:    prompt.ErrInterrupted,
			wantOut:    "Welcome to create-tap-react!",
		},
		"config load failure": {
			loadConfig:   func() (*config.Configuration, error) { return nil, errors.New("permission denied") },
			wantCategory: ptr(clierrors.Configuration),
		},
		"config cli error passes through": {
			loadConfig: func() (*config.Configuration, error) {
				return nil, clierrors.InvalidConfigValue("remote_host", "", "required")
			},
			wantCategory: ptr(clierrors.Configuration),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			err := run(context.Background(), streams{
				in:     strings.NewReader(""),
				out:    &out,
				errOut: &bytes.Buffer{},
			}, tt.loadConfig)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantCategory != nil {
				assert.True(t, clierrors.IsCategory(err, *tt.wantCategory))
			}
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestDebugPrinter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	debugPrinter(&buf)("[fetch] cloning %s", "https://github.com/owner/repo")
	assert.Equal(t, "[debug] [fetch] cloning https://github.com/owner/repo\n", buf.String())
}

func ptr[T any](v T) *T {
	return &v
}
