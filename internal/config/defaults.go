package config

import "time"

// GetDefaultConfigTemplate returns a fully commented config template
// that documents every available option.
func GetDefaultConfigTemplate() string {
	return `# create-tap-react configuration
# Every key can also be set with a TAPREACT_<KEY> environment variable.

remote_host: https://github.com       # Host that owner/name template coordinates resolve against
default_project_name: my-app          # Default answer for the project name prompt
fetch_timeout: 2m                     # Template download timeout (0 = no timeout)
install_timeout: 0                    # Dependency install timeout (0 = no timeout)
skip_install: false                   # Skip installing dependencies
debug: false                          # Print [debug] diagnostics to stderr
ascii: false                          # Force ASCII progress symbols
`
}

// GetDefaults returns the default configuration values as a map
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"remote_host":          "https://github.com",
		"default_project_name": "my-app",
		"fetch_timeout":        2 * time.Minute,
		"install_timeout":      time.Duration(0),
		"skip_install":         false,
		"debug":                false,
		"ascii":                false,
	}
}
