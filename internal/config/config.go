// Package config loads the optional stackforge defaults file.
//
// The file is JSONC (JSON with Comments), so users can annotate their
// defaults in place. Comments are stripped with github.com/tidwall/jsonc
// before parsing with the standard encoding/json library.
//
// Resolution order:
//  1. <cwd>/.stackforge.jsonc (per-project defaults)
//  2. $XDG_CONFIG_HOME/stackforge/config.jsonc (per-user defaults,
//     falling back to ~/.config when XDG_CONFIG_HOME is unset)
//
// A missing file is not an error — Load returns zero-valued defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/tessera-labs/stackforge/internal/ident"
	"github.com/tessera-labs/stackforge/internal/model"
)

// FileName is the per-project config file looked up in the working directory.
const FileName = ".stackforge.jsonc"

// Config holds the user's scaffold defaults. Every field is optional;
// CLI flags always win over config values.
type Config struct {
	// Defaults pre-selects stack choices for init when the corresponding
	// flag is not given.
	Defaults StackDefaults `json:"defaults,omitempty"`

	// Author is written into generated manifests and docs.
	Author model.Author `json:"author,omitempty"`

	// License is the SPDX identifier for generated projects (e.g. "MIT").
	License string `json:"license,omitempty"`

	// PresetDir overrides the directory scanned for user presets.
	PresetDir string `json:"presetDir,omitempty"`

	// Path records where the config was loaded from. Empty when no
	// config file was found. Set by the loader, never read from JSON.
	Path string `json:"-"`
}

// StackDefaults mirrors the init command's stack flags.
type StackDefaults struct {
	Frontend   string `json:"frontend,omitempty"`
	Backend    string `json:"backend,omitempty"`
	Database   string `json:"database,omitempty"`
	Deployment string `json:"deployment,omitempty"`
}

// Load resolves and parses the config file for the given working
// directory. Returns zero-valued defaults when no file exists, and a
// CLIError with ExitConfigError when a file exists but cannot be parsed
// or fails validation.
func Load(cwd string) (*Config, error) {
	path, ok := resolvePath(cwd)
	if !ok {
		return &Config{}, nil
	}
	return LoadFile(path)
}

// LoadFile reads a specific config file, strips JSONC comments, parses,
// and validates it.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	// Strip JSONC comments (// and /* */) and trailing commas before
	// parsing with encoding/json.
	cleanJSON := jsonc.ToJSON(data)

	var cfg Config
	if err := json.Unmarshal(cleanJSON, &cfg); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("invalid config file %s", path), err)
	}

	return &cfg, nil
}

// Validate checks the stack defaults against the model enums and the
// author email against the ident rules.
func (c *Config) Validate() error {
	if _, err := model.ParseFrontend(c.Defaults.Frontend); err != nil {
		return err
	}
	if _, err := model.ParseBackend(c.Defaults.Backend); err != nil {
		return err
	}
	if _, err := model.ParseDatabase(c.Defaults.Database); err != nil {
		return err
	}
	if _, err := model.ParseDeployment(c.Defaults.Deployment); err != nil {
		return err
	}
	if c.Author.Email != "" {
		if err := ident.ValidateEmail(c.Author.Email); err != nil {
			return fmt.Errorf("author: %w", err)
		}
	}
	return nil
}

// ResolvePresetDir returns the directory scanned for user presets:
// the configured PresetDir when set, otherwise the default under the
// user config directory.
func (c *Config) ResolvePresetDir() string {
	if c.PresetDir != "" {
		return c.PresetDir
	}
	base, err := userConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "stackforge", "presets")
}

// resolvePath returns the first existing config file in resolution order.
func resolvePath(cwd string) (string, bool) {
	local := filepath.Join(cwd, FileName)
	if _, err := os.Stat(local); err == nil {
		return local, true
	}

	base, err := userConfigDir()
	if err != nil {
		return "", false
	}
	global := filepath.Join(base, "stackforge", "config.jsonc")
	if _, err := os.Stat(global); err == nil {
		return global, true
	}

	return "", false
}

// userConfigDir resolves the XDG config base directory.
func userConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}
