package errors

import (
	"fmt"
	"strings"
)

// Common error messages for create-tap-react.
// These templates keep the wording of user-visible failures consistent.

// InvalidTemplateSelection creates the error returned when a prompt answer
// does not match any catalog entry.
func InvalidTemplateSelection(value string) *CLIError {
	return NewSelectionError(
		fmt.Sprintf("invalid template selection: %q", value),
		"Run create-tap-react again and pick a template from the list",
	)
}

// TemplateFetchFailed creates the fatal error for a failed template download.
func TemplateFetchFailed(repo string, err error) *CLIError {
	return &CLIError{
		Category: Fetch,
		Message:  fmt.Sprintf("downloading %s: %v", repo, err),
		Remediation: []string{
			"Check your network connection",
			"Set GITHUB_TOKEN if the template repository is private",
			"Override the host with TAPREACT_REMOTE_HOST when using a mirror",
		},
		Err: err,
	}
}

// TargetNotCreated creates the error for a project directory that could not be created.
func TargetNotCreated(dir string, err error) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  fmt.Sprintf("creating project directory %s: %v", dir, err),
		Remediation: []string{
			"Check that you have write permission for the parent directory",
		},
		Err: err,
	}
}

// InvalidConfigValue creates an error for a configuration key with a bad value.
func InvalidConfigValue(key string, value any, reason string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("invalid value for %s: %v (%s)", key, value, reason),
		fmt.Sprintf("Fix %s in your config file or unset the TAPREACT_%s environment variable", key, strings.ToUpper(key)),
	)
}

