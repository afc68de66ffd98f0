// Package preset defines template bundles: named combinations of
// frontend, backend, database, and deployment choices that the init
// command applies when --template is given.
//
// Builtin presets (saas, ecommerce, api, dashboard, mobile) are defined
// as YAML documents compiled into the binary. User presets are plain
// *.yaml files in the stackforge config directory and are loaded with
// the same parser, so a user preset is exactly as expressive as a
// builtin one.
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tessera-labs/stackforge/internal/model"
)

// Preset is a named template bundle. When applied, its stack fields
// override whatever the individual CLI flags selected.
type Preset struct {
	// Name is the identifier passed to --template. Must be unique
	// across builtins and user presets.
	Name string `yaml:"name"`

	// Description is a one-line summary shown by the list command.
	Description string `yaml:"description"`

	// Frontend, Backend, Database, and Deployment select the stacks.
	// Each is validated against the model enums on load.
	Frontend   string `yaml:"frontend,omitempty"`
	Backend    string `yaml:"backend,omitempty"`
	Database   string `yaml:"database,omitempty"`
	Deployment string `yaml:"deployment,omitempty"`

	// Extras toggles optional scaffold additions.
	Extras Extras `yaml:"extras,omitempty"`

	// Builtin marks presets compiled into the binary. Set by the loader,
	// never read from YAML.
	Builtin bool `yaml:"-"`
}

// Extras lists the optional scaffold additions a preset can enable.
type Extras struct {
	// Docs generates the documentation skeleton (ADR template, guides).
	Docs bool `yaml:"docs,omitempty"`

	// CI generates a GitHub Actions workflow stub.
	CI bool `yaml:"ci,omitempty"`
}

// Validate checks that the preset has a usable name and that every stack
// field names a valid choice. An empty stack field is allowed and means
// the preset does not pin that dimension.
func (p *Preset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("preset: name must not be empty")
	}
	if err := model.ValidateName(p.Name); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if _, err := model.ParseFrontend(p.Frontend); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if _, err := model.ParseBackend(p.Backend); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if _, err := model.ParseDatabase(p.Database); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if _, err := model.ParseDeployment(p.Deployment); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return nil
}

// Apply copies the preset's stack choices onto the spec, overriding any
// values already present. This matches the flag contract: --template is
// a bundle that overrides the individual stack flags.
func (p *Preset) Apply(spec *model.ProjectSpec) {
	spec.Template = p.Name
	if p.Frontend != "" {
		spec.Frontend = model.Frontend(p.Frontend)
	}
	if p.Backend != "" {
		spec.Backend = model.Backend(p.Backend)
	}
	if p.Database != "" {
		spec.Database = model.Database(p.Database)
	}
	if p.Deployment != "" {
		spec.Deployment = model.Deployment(p.Deployment)
	}
	if p.Extras.Docs {
		spec.WithDocs = true
	}
	if p.Extras.CI {
		spec.WithCI = true
	}
}

// Parse decodes and validates a single preset YAML payload.
func Parse(data []byte) (Preset, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Preset{}, fmt.Errorf("preset: payload is empty")
	}
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("preset: decode: %w", err)
	}
	p.Name = strings.ToLower(strings.TrimSpace(p.Name))
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// LoadFile reads a YAML file from disk and returns the parsed preset.
func LoadFile(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: %s: %w", path, err)
	}
	return p, nil
}

// LoadDir scans a directory for *.yaml presets and returns them sorted
// by name. A missing directory is treated as "no user presets" so a
// fresh installation works without any setup.
func LoadDir(dir string) ([]Preset, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("preset: read %s: %w", trimmed, err)
	}

	var presets []Preset
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !isYAMLFile(name) {
			continue
		}
		p, err := LoadFile(filepath.Join(trimmed, name))
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}

	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets, nil
}

// isYAMLFile reports whether the file name has a YAML extension.
func isYAMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// Catalog holds the merged set of builtin and user presets, keyed by name.
type Catalog struct {
	presets map[string]Preset
}

// NewCatalog builds a catalog from the builtin presets plus the user
// presets found in dir. A user preset whose name collides with a builtin
// (or with another user preset) is a load error rather than a silent
// shadow, so `--template saas` always means the same thing.
func NewCatalog(dir string) (*Catalog, error) {
	c := &Catalog{presets: make(map[string]Preset)}

	for _, p := range Builtins() {
		c.presets[strings.ToLower(p.Name)] = p
	}

	userPresets, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, p := range userPresets {
		// Keys are lowercased so lookups stay case insensitive.
		key := strings.ToLower(p.Name)
		if existing, ok := c.presets[key]; ok {
			kind := "user preset"
			if existing.Builtin {
				kind = "builtin preset"
			}
			return nil, fmt.Errorf("preset: %q conflicts with a %s of the same name", p.Name, kind)
		}
		c.presets[key] = p
	}

	return c, nil
}

// Get looks up a preset by name (case insensitive).
func (c *Catalog) Get(name string) (Preset, error) {
	p, ok := c.presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Preset{}, fmt.Errorf("unknown template %q (valid: %s)", name, strings.Join(c.Names(), ", "))
	}
	return p, nil
}

// Names returns all preset names sorted alphabetically.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.presets))
	for name := range c.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all presets sorted by name, builtins and user presets alike.
func (c *Catalog) All() []Preset {
	presets := make([]Preset, 0, len(c.presets))
	for _, p := range c.presets {
		presets = append(presets, p)
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets
}
