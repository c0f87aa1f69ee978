// Package report prints the completion summary for a scaffolded project and
// suggests the next commands to run based on its package manifest.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestFile is the package manifest read from the project root.
const ManifestFile = "package.json"

// Manifest holds the scripts of a package.json. Script values keep whatever
// JSON type the file uses; only their truthiness matters.
type Manifest struct {
	Scripts map[string]any
}

// ReadManifest reads and parses dir/package.json. Any JSON object parses;
// a scripts entry that is not an object is treated as having no scripts.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("parsing manifest: %s is null", ManifestFile)
	}

	m := &Manifest{}
	if raw, ok := doc["scripts"]; ok {
		var scripts map[string]any
		if json.Unmarshal(raw, &scripts) == nil {
			m.Scripts = scripts
		}
	}
	return m, nil
}

// HasScript reports whether the manifest defines a script with a truthy
// value: not null, false, 0, or the empty string.
func (m *Manifest) HasScript(name string) bool {
	if m == nil {
		return false
	}
	switch v := m.Scripts[name].(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}
