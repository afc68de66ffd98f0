package scaffold

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/tessera-labs/stackforge/internal/model"
)

// templateData is the value handed to every scaffold template. It wraps
// the spec with a few derived fields templates need repeatedly.
type templateData struct {
	*model.ProjectSpec

	// Date is the generation date in YYYY-MM-DD form.
	Date string

	// Year is the four-digit generation year, for license headers.
	Year int
}

// newTemplateData builds the template context from a spec.
func newTemplateData(spec *model.ProjectSpec) templateData {
	created := spec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	return templateData{
		ProjectSpec: spec,
		Date:        DateStamp(created),
		Year:        created.Year(),
	}
}

// render executes a single named template body against the spec.
func render(name, body string, spec *model.ProjectSpec) ([]byte, error) {
	tmpl, err := template.New(name).Parse(body)
	if err != nil {
		return nil, fmt.Errorf("scaffold: parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newTemplateData(spec)); err != nil {
		return nil, fmt.Errorf("scaffold: render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// renderAll renders a path→body template map into a sorted-later file
// slice. Paths are literal, not templated.
func renderAll(templates map[string]string, spec *model.ProjectSpec) ([]File, error) {
	files := make([]File, 0, len(templates))
	for path, body := range templates {
		content, err := render(path, body, spec)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: path, Content: content})
	}
	return files, nil
}

// DateStamp formats a time as YYYY-MM-DD for ADR headers, doc
// frontmatter, and the project manifest. The zero time renders as the
// literal "Invalid Date" rather than the epoch-adjacent 0001-01-01.
func DateStamp(t time.Time) string {
	if t.IsZero() {
		return "Invalid Date"
	}
	return t.Format("2006-01-02")
}
