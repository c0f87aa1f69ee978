// Package testutil provides test utilities and helpers for create-tap-react tests.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// HelperProcessConfig configures the behavior of TestHelperProcess.
type HelperProcessConfig struct {
	// ExitCode is the exit code to return (default 0).
	ExitCode int `json:"exit_code"`
	// Stdout is the content to write to stdout.
	Stdout string `json:"stdout"`
	// Stderr is the content to write to stderr.
	Stderr string `json:"stderr"`
	// CallLogPath, when set, receives a CallRecord for every invocation.
	CallLogPath string `json:"call_log_path"`
	// Delay holds the process open before it writes output and exits.
	Delay time.Duration `json:"delay"`
}

// HelperProcessEnvVars contains the environment variable names used by TestHelperProcess.
const (
	// EnvWantHelperProcess signals that the test binary should run as a helper process.
	EnvWantHelperProcess = "GO_WANT_HELPER_PROCESS"
	// EnvHelperProcessConfig contains JSON-encoded HelperProcessConfig.
	EnvHelperProcessConfig = "GO_HELPER_PROCESS_CONFIG"
	// EnvHelperProcessArgs contains the original command-line arguments (JSON array).
	EnvHelperProcessArgs = "GO_HELPER_PROCESS_ARGS"
)

// TestHelperProcess is a function to be called from a test function
// to implement the helper process pattern. When invoked with GO_WANT_HELPER_PROCESS=1,
// it behaves as a mock subprocess and exits without returning.
//
// Usage in test file:
//
//	func TestHelperProcess(t *testing.T) {
//	    testutil.TestHelperProcess(t)
//	}
func TestHelperProcess(t *testing.T) {
	if os.Getenv(EnvWantHelperProcess) != "1" {
		return
	}

	config := parseHelperConfig()
	runHelperProcess(config)
}

// parseHelperConfig parses HelperProcessConfig from environment variable.
func parseHelperConfig() HelperProcessConfig {
	config := HelperProcessConfig{}
	if configJSON := os.Getenv(EnvHelperProcessConfig); configJSON != "" {
		// Ignore parse errors; use defaults on failure
		_ = json.Unmarshal([]byte(configJSON), &config)
	}
	return config
}

// runHelperProcess executes the helper process behavior and always exits.
func runHelperProcess(config HelperProcessConfig) {
	if config.CallLogPath != "" {
		args, _ := GetHelperProcessArgs()
		dir, _ := os.Getwd()
		if err := AppendCallRecord(config.CallLogPath, CallRecord{Args: args, Dir: dir, ExitCode: config.ExitCode}); err != nil {
			fmt.Fprintf(os.Stderr, "helper process: %v\n", err)
			os.Exit(99)
		}
	}

	if config.Delay > 0 {
		time.Sleep(config.Delay)
	}

	if config.Stdout != "" {
		fmt.Fprint(os.Stdout, config.Stdout)
	}
	if config.Stderr != "" {
		fmt.Fprint(os.Stderr, config.Stderr)
	}

	os.Exit(config.ExitCode)
}

// ConfigureTestCommand creates an exec.Cmd that invokes the test binary
// as a helper process instead of the real command.
//
// Parameters:
//   - t: The test context
//   - testName: Name of the test function containing TestHelperProcess call
//   - config: Configuration for the helper process behavior
//   - args: Original arguments that would be passed to the real command
func ConfigureTestCommand(t *testing.T, testName string, config HelperProcessConfig, args ...string) *exec.Cmd {
	t.Helper()
	return ConfigureTestCommandContext(context.Background(), t, testName, config, args...)
}

// ConfigureTestCommandContext is ConfigureTestCommand with a context that
// kills the helper process when it is done.
func ConfigureTestCommandContext(ctx context.Context, t *testing.T, testName string, config HelperProcessConfig, args ...string) *exec.Cmd {
	t.Helper()

	testBinary, err := os.Executable()
	if err != nil {
		t.Fatalf("failed to get test binary path: %v", err)
	}

	cmd := exec.CommandContext(ctx, testBinary, "-test.run=^"+testName+"$")
	cmd.Env = buildHelperEnv(t, config, args)
	return cmd
}

// buildHelperEnv constructs the environment variables for helper process.
func buildHelperEnv(t *testing.T, config HelperProcessConfig, args []string) []string {
	t.Helper()

	env := os.Environ()
	env = append(env, EnvWantHelperProcess+"=1")

	if configJSON, err := json.Marshal(config); err == nil {
		env = append(env, EnvHelperProcessConfig+"="+string(configJSON))
	}
	if argsJSON, err := json.Marshal(args); err == nil {
		env = append(env, EnvHelperProcessArgs+"="+string(argsJSON))
	}

	return env
}

// GetHelperProcessArgs retrieves the original arguments passed to the helper process.
func GetHelperProcessArgs() ([]string, error) {
	argsJSON := os.Getenv(EnvHelperProcessArgs)
	if argsJSON == "" {
		return nil, nil
	}

	var args []string
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return nil, fmt.Errorf("parsing helper process args: %w", err)
	}
	return args, nil
}

// HelperProcessResult captures the result of running a helper process command.
type HelperProcessResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// Args contains the arguments that were passed (from env var).
	Args []string
	// Err is any error from cmd.Run() (e.g., exit status error).
	Err error
}

// RunHelperCommand executes a helper process command and captures results.
func RunHelperCommand(t *testing.T, cmd *exec.Cmd) *HelperProcessResult {
	t.Helper()

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := &HelperProcessResult{Err: cmd.Run()}
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}
	result.Args = extractArgsFromEnv(cmd.Env)
	return result
}

// extractArgsFromEnv parses the original args from the command's env vars.
func extractArgsFromEnv(env []string) []string {
	for _, e := range env {
		if argsJSON, ok := strings.CutPrefix(e, EnvHelperProcessArgs+"="); ok {
			var args []string
			if err := json.Unmarshal([]byte(argsJSON), &args); err == nil {
				return args
			}
		}
	}
	return nil
}
