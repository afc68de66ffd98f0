// Package cli — list.go implements the "stackforge list" command.
//
// The list command displays the supported stack choices and available
// template presets, including presets discovered in the user's preset
// directory. Output is a set of text sections or a JSON object,
// depending on the --json flag.
//
// An optional --kind flag restricts output to a single category.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tessera-labs/stackforge/internal/config"
	"github.com/tessera-labs/stackforge/internal/model"
	"github.com/tessera-labs/stackforge/internal/preset"
)

// listKinds are the valid values for the --kind flag.
var listKinds = []string{"frontends", "backends", "databases", "deployments", "templates", "all"}

// listFlags holds the flag values for the list command.
type listFlags struct {
	// kind restricts output to one category. Default "all".
	kind string
}

// NewListCommand creates the "list" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List supported stacks and template presets",
		Long: `List the supported frontend frameworks, backend runtimes, databases,
deployment targets, and template presets.

Presets include the built-in templates plus any found in the user's
preset directory.

Examples:
  stackforge list
  stackforge list --kind templates
  stackforge list --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(flags)
		},
	}

	cmd.Flags().StringVar(&flags.kind, "kind", "all",
		"Category to list: frontends, backends, databases, deployments, templates, all")

	return cmd
}

// runList resolves the preset catalog and prints the requested category.
func runList(flags *listFlags) error {
	if !isValidKind(flags.kind) {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("invalid kind %q: valid values are %s", flags.kind, strings.Join(listKinds, ", ")))
	}

	// Presets come from the catalog, so user preset directories show up
	// alongside the built-ins. Config errors here are real errors: a
	// broken config would silently hide user presets otherwise.
	var presets []preset.Preset
	if flags.kind == "all" || flags.kind == "templates" {
		cwd, err := os.Getwd()
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
		}
		cfg, err := config.Load(cwd)
		if err != nil {
			return err
		}
		catalog, err := preset.NewCatalog(cfg.ResolvePresetDir())
		if err != nil {
			return model.WrapCLIError(model.ExitConfigError, "failed to load preset catalog", err)
		}
		presets = catalog.All()
		VerboseLog("Loaded %d presets", len(presets))
	}

	printListResult(flags.kind, presets)
	return nil
}

// isValidKind reports whether s is an accepted --kind value.
func isValidKind(s string) bool {
	for _, k := range listKinds {
		if s == k {
			return true
		}
	}
	return false
}

// printListResult outputs the category listing in text or JSON format,
// depending on the global --json flag.
func printListResult(kind string, presets []preset.Preset) {
	if IsJSONOutput() {
		printListResultJSON(kind, presets)
	} else {
		printListResultText(kind, presets)
	}
}

// listTemplateJSON is the JSON output structure for a single preset.
type listTemplateJSON struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Frontend    string `json:"frontend,omitempty"`
	Backend     string `json:"backend,omitempty"`
	Database    string `json:"database,omitempty"`
	Deployment  string `json:"deployment,omitempty"`
	Builtin     bool   `json:"builtin"`
}

// printListResultJSON outputs the listing as a single JSON object with
// one key per requested category.
func printListResultJSON(kind string, presets []preset.Preset) {
	result := make(map[string]interface{})

	if kind == "all" || kind == "frontends" {
		result["frontends"] = choiceStrings(model.Frontends())
	}
	if kind == "all" || kind == "backends" {
		result["backends"] = choiceStrings(model.Backends())
	}
	if kind == "all" || kind == "databases" {
		result["databases"] = choiceStrings(model.Databases())
	}
	if kind == "all" || kind == "deployments" {
		result["deployments"] = choiceStrings(model.Deployments())
	}
	if kind == "all" || kind == "templates" {
		// Empty slice instead of nil so JSON shows [] rather than null.
		entries := make([]listTemplateJSON, 0, len(presets))
		for _, p := range presets {
			entries = append(entries, listTemplateJSON{
				Name:        p.Name,
				Description: p.Description,
				Frontend:    p.Frontend,
				Backend:     p.Backend,
				Database:    p.Database,
				Deployment:  p.Deployment,
				Builtin:     p.Builtin,
			})
		}
		result["templates"] = entries
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// printListResultText outputs the listing as labelled text sections.
func printListResultText(kind string, presets []preset.Preset) {
	if kind == "all" || kind == "frontends" {
		fmt.Printf("Frontends:   %s\n", strings.Join(choiceStrings(model.Frontends()), ", "))
	}
	if kind == "all" || kind == "backends" {
		fmt.Printf("Backends:    %s\n", strings.Join(choiceStrings(model.Backends()), ", "))
	}
	if kind == "all" || kind == "databases" {
		fmt.Printf("Databases:   %s\n", strings.Join(choiceStrings(model.Databases()), ", "))
	}
	if kind == "all" || kind == "deployments" {
		fmt.Printf("Deployments: %s\n", strings.Join(choiceStrings(model.Deployments()), ", "))
	}

	if kind == "all" || kind == "templates" {
		if kind == "all" {
			fmt.Println()
		}
		fmt.Printf("%-12s %-10s %-10s %-12s %-12s %s\n",
			"TEMPLATE", "FRONTEND", "BACKEND", "DATABASE", "DEPLOYMENT", "SOURCE")
		for _, p := range presets {
			fmt.Printf("%-12s %-10s %-10s %-12s %-12s %s\n",
				p.Name,
				dashIfEmpty(p.Frontend),
				dashIfEmpty(p.Backend),
				dashIfEmpty(p.Database),
				dashIfEmpty(p.Deployment),
				presetSource(p),
			)
		}
	}
}

// choiceStrings converts a typed choice list to plain strings for output.
// Exported logic lives behind a generic because all four enum families
// share the same shape.
func choiceStrings[T ~string](choices []T) []string {
	out := make([]string, 0, len(choices))
	for _, c := range choices {
		out = append(out, string(c))
	}
	return out
}

// dashIfEmpty substitutes "-" for empty table cells.
func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// presetSource labels a preset as built-in or user-provided.
func presetSource(p preset.Preset) string {
	if p.Builtin {
		return "builtin"
	}
	return "user"
}
