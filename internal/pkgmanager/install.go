package pkgmanager

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for install runs.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// CommandFunc builds the process for an install command. It matches
// exec.CommandContext and exists so tests can substitute a helper process.
type CommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// InstallError reports a failed install command.
type InstallError struct {
	Manager Manager
	Err     error
	// Stderr is the captured standard error of the command.
	Stderr string
}

func (e *InstallError) Error() string {
	msg := fmt.Sprintf("%s install failed: %v", e.Manager, e.Err)
	if tail := lastLine(e.Stderr); tail != "" {
		msg += ": " + tail
	}
	return msg
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// Installer runs the detected package manager's install command.
type Installer struct {
	// Command builds processes; nil means exec.CommandContext.
	Command CommandFunc
	// Timeout bounds the install command. 0 disables it.
	Timeout time.Duration
}

// Install detects the manager for dir and runs its install command there,
// blocking until it exits. Stdin and stdout are discarded and stderr is
// captured for diagnostics. The detected manager is returned even on failure.
func (i *Installer) Install(ctx context.Context, dir string) (Manager, error) {
	manager := Detect(dir)

	if i.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.Timeout)
		defer cancel()
	}

	command := i.Command
	if command == nil {
		command = exec.CommandContext
	}

	args := manager.InstallArgs()
	cmd := command(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	cmd.Stdin = nil
	cmd.Stdout = io.Discard
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logDebug("[install] running %s in %s", strings.Join(args, " "), dir)
	start := time.Now()

	if err := cmd.Run(); err != nil {
		logDebug("[install] %s failed after %s, stderr:\n%s", manager, time.Since(start).Round(time.Millisecond), stderr.String())
		return manager, &InstallError{Manager: manager, Err: err, Stderr: stderr.String()}
	}

	logDebug("[install] %s finished in %s", manager, time.Since(start).Round(time.Millisecond))
	return manager, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
