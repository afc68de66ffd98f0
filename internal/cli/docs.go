// Package cli — docs.go implements the "stackforge docs" command.
//
// The docs command drops the documentation skeleton (ADR templates,
// branching strategy, onboarding guide, checklists) into an existing
// project, for teams adopting the baseline after the fact.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tessera-labs/stackforge/internal/model"
	"github.com/tessera-labs/stackforge/internal/scaffold"
)

// docsFlags holds the flag values for the docs command.
type docsFlags struct {
	output string // --output: project root to write docs/ into
	force  bool   // --force: overwrite existing files
}

// NewDocsCommand creates the "docs" cobra command.
func NewDocsCommand() *cobra.Command {
	flags := &docsFlags{}

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate the documentation skeleton in an existing project",
		Long: `Generate the docs/ skeleton: an ADR directory with a template and a
first record, a branching strategy, an onboarding guide, and code
review and release checklists.

Existing files are left untouched unless --force is given.

Examples:
  stackforge docs
  stackforge docs --output ./my-project
  stackforge docs --force`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocs(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Project root to write docs into (default: current directory)")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite existing documentation files")

	return cmd
}

// runDocs renders and writes the documentation file set.
func runDocs(flags *docsFlags) error {
	root := flags.output
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
		}
		root = cwd
	}

	files, err := scaffold.DocsFiles(time.Now().UTC())
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to render documentation", err)
	}

	progress := func(done, total int, path string) {
		VerboseLog("step %d/%d (%.2f%%) %s", done, total, Percentage(float64(done), float64(total)), path)
	}
	if err := scaffold.WriteFiles(root, files, flags.force, progress); err != nil {
		return err
	}

	printDocsResult(root, files)
	return nil
}

// printDocsResult outputs the docs command results in text or JSON format.
func printDocsResult(root string, files []scaffold.File) {
	if IsJSONOutput() {
		result := struct {
			Root  string   `json:"root"`
			Files []string `json:"files"`
		}{Root: root}
		for _, f := range files {
			result.Files = append(result.Files, f.Path)
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Created documentation skeleton (%d files)\n", len(files))
	for _, f := range files {
		fmt.Printf("  %s\n", f.Path)
	}
}
