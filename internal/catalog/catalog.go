// Package catalog holds the starter templates create-tap-react can scaffold.
// The catalog is compiled into the binary and never changes during a run.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var defaultCatalog []byte

// Template is one scaffolding choice.
type Template struct {
	Name        string `yaml:"name"`
	Value       string `yaml:"value"`
	Repo        string `yaml:"repo"`
	Description string `yaml:"description"`
	Available   bool   `yaml:"available"`
}

// Catalog is an ordered, read-only set of templates with unique values.
type Catalog struct {
	templates []Template
	byValue   map[string]int
}

type catalogFile struct {
	Templates []Template `yaml:"templates"`
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded template catalog is invalid: %v", err))
	}
	return c
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return New(f.Templates)
}

// New builds a catalog from templates, rejecting empty or duplicate values
// and templates without a repository coordinate.
func New(templates []Template) (*Catalog, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("catalog has no templates")
	}

	c := &Catalog{
		templates: make([]Template, len(templates)),
		byValue:   make(map[string]int, len(templates)),
	}
	copy(c.templates, templates)

	for i, t := range c.templates {
		if strings.TrimSpace(t.Value) == "" {
			return nil, fmt.Errorf("template %d (%q) has no value", i, t.Name)
		}
		if strings.TrimSpace(t.Repo) == "" {
			return nil, fmt.Errorf("template %q has no repo", t.Value)
		}
		if _, dup := c.byValue[t.Value]; dup {
			return nil, fmt.Errorf("duplicate template value %q", t.Value)
		}
		c.byValue[t.Value] = i
	}

	return c, nil
}

// Templates returns the templates in catalog order. The slice is a copy.
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Lookup finds a template by its value.
func (c *Catalog) Lookup(value string) (Template, bool) {
	i, ok := c.byValue[value]
	if !ok {
		return Template{}, false
	}
	return c.templates[i], true
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}
