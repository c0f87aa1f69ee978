// Package pkgmanager detects which JavaScript package manager a project uses
// and runs its install command.
package pkgmanager

import (
	"os"
	"path/filepath"
)

// Manager is a supported package manager.
type Manager string

const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
)

// Default is used when no lockfile identifies a manager.
const Default = NPM

// Lockfiles checked by Detect, in priority order.
const (
	YarnLockfile = "yarn.lock"
	PNPMLockfile = "pnpm-lock.yaml"
)

// Detect returns yarn when dir holds yarn.lock, pnpm when it holds
// pnpm-lock.yaml, and npm otherwise.
func Detect(dir string) Manager {
	switch {
	case exists(filepath.Join(dir, YarnLockfile)):
		return Yarn
	case exists(filepath.Join(dir, PNPMLockfile)):
		return PNPM
	default:
		return Default
	}
}

// InstallArgs returns the install command line, e.g. ["yarn", "install"].
func (m Manager) InstallArgs() []string {
	return []string{string(m), "install"}
}

// RunScript returns the command that runs a manifest script. npm needs
// "run" except for its built-in start script; yarn and pnpm run scripts directly.
func (m Manager) RunScript(script string) string {
	if m == NPM && script != "start" {
		return "npm run " + script
	}
	return string(m) + " " + script
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
