package scaffold

import (
	"strings"

	"github.com/tessera-labs/stackforge/internal/model"
)

// baseIgnoreEntries apply to every generated project.
var baseIgnoreEntries = []string{
	".env",
	".DS_Store",
	"*.log",
}

// GitignoreContent assembles the .gitignore for a spec: base entries
// first, then per-stack sections. Entries are deduplicated so stacks
// that share artifacts (node frontend + node backend) don't repeat them.
func GitignoreContent(spec *model.ProjectSpec) string {
	var b strings.Builder
	seen := make(map[string]bool)

	writeSection := func(header string, entries []string) {
		fresh := make([]string, 0, len(entries))
		for _, e := range entries {
			if !seen[e] {
				seen[e] = true
				fresh = append(fresh, e)
			}
		}
		if len(fresh) == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		if header != "" {
			b.WriteString("# " + header + "\n")
		}
		for _, e := range fresh {
			b.WriteString(e + "\n")
		}
	}

	writeSection("", baseIgnoreEntries)

	if spec.Frontend != "" {
		writeSection(spec.Frontend.String(), frontendIgnoreEntries(spec.Frontend))
	}
	if spec.Backend != "" {
		writeSection(spec.Backend.String(), backendIgnoreEntries(spec.Backend))
	}
	if spec.Database == model.DatabaseSQLite {
		writeSection("sqlite", []string{"*.sqlite", "*.db"})
	}

	return b.String()
}

// frontendIgnoreEntries returns the ignore entries for a frontend stack.
func frontendIgnoreEntries(f model.Frontend) []string {
	switch f {
	case model.FrontendNextJS:
		return []string{"node_modules/", ".next/", "out/", "dist/"}
	case model.FrontendAngular:
		return []string{"node_modules/", "dist/", ".angular/"}
	default:
		// react and vue share the same toolchain artifacts.
		return []string{"node_modules/", "dist/", "build/"}
	}
}

// backendIgnoreEntries returns the ignore entries for a backend stack.
func backendIgnoreEntries(b model.Backend) []string {
	switch b {
	case model.BackendNode:
		return []string{"node_modules/", "dist/"}
	case model.BackendPython:
		return []string{"__pycache__/", "*.pyc", ".venv/", ".pytest_cache/"}
	case model.BackendDotnet:
		return []string{"bin/", "obj/"}
	case model.BackendJava:
		return []string{"target/", "*.class"}
	default:
		return nil
	}
}
