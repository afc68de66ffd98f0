package scaffold

import (
	"encoding/json"
	"fmt"

	"github.com/tessera-labs/stackforge/internal/model"
)

// readmeTemplate is the generated project README. It lists the selected
// stacks and the standard getting-started steps for each.
const readmeTemplate = `# {{.Name}}

Generated with stackforge{{if .Template}} from the {{.Template}} template{{end}} on {{.Date}}.

## Stack

{{if .Frontend}}- Frontend: {{.Frontend}}
{{end}}{{if .Backend}}- Backend: {{.Backend}}
{{end}}{{if .Database}}- Database: {{.Database}}
{{end}}{{if .Deployment}}- Deployment: {{.Deployment}}
{{end}}
## Getting started

{{if .Frontend}}### Frontend

` + "```sh" + `
cd frontend
npm install
npm run dev
` + "```" + `

{{end}}{{if .Backend}}### Backend

{{if eq .Backend.String "node"}}` + "```sh" + `
cd backend
npm install
npm start
` + "```" + `
{{else if eq .Backend.String "python"}}` + "```sh" + `
cd backend
python -m venv .venv && source .venv/bin/activate
pip install -r requirements.txt
uvicorn app.main:app --reload
` + "```" + `
{{else if eq .Backend.String "dotnet"}}` + "```sh" + `
cd backend
dotnet run
` + "```" + `
{{else}}` + "```sh" + `
cd backend
mvn spring-boot:run
` + "```" + `
{{end}}
{{end}}{{if .Database}}Copy ` + "`.env.example`" + ` to ` + "`.env`" + ` and adjust the credentials before starting.
{{end}}{{if .Author.Name}}
---
Maintained by {{.Author.Name}}{{if .Author.Email}} <{{.Author.Email}}>{{end}}.
{{end}}`

// editorconfigBody is stack-independent, so it is a plain constant
// rather than a template.
const editorconfigBody = `root = true

[*]
charset = utf-8
end_of_line = lf
insert_final_newline = true
indent_style = space
indent_size = 2

[*.{py,cs,java}]
indent_size = 4

[Makefile]
indent_style = tab
`

// ciWorkflowTemplate is the GitHub Actions stub generated when the
// preset enables CI. It wires up whichever stacks the spec selected.
const ciWorkflowTemplate = `name: ci

on:
  push:
    branches: [main]
  pull_request:

jobs:
{{if .Frontend}}  frontend:
    runs-on: ubuntu-latest
    defaults:
      run:
        working-directory: frontend
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-node@v4
        with:
          node-version: 20
      - run: npm ci
      - run: npm test --if-present
{{end}}{{if .Backend}}  backend:
    runs-on: ubuntu-latest
    defaults:
      run:
        working-directory: backend
    steps:
      - uses: actions/checkout@v4
{{if eq .Backend.String "node"}}      - uses: actions/setup-node@v4
        with:
          node-version: 20
      - run: npm ci
      - run: npm test --if-present
{{else if eq .Backend.String "python"}}      - uses: actions/setup-python@v5
        with:
          python-version: "3.12"
      - run: pip install -r requirements.txt
      - run: python -m pytest
{{else if eq .Backend.String "dotnet"}}      - uses: actions/setup-dotnet@v4
        with:
          dotnet-version: "8.0.x"
      - run: dotnet test
{{else}}      - uses: actions/setup-java@v4
        with:
          distribution: temurin
          java-version: "21"
      - run: mvn -B test
{{end}}{{end}}`

// manifest is the stackforge.json file written into every generated
// project. It records what was generated and from which inputs, so
// later tooling can identify scaffolded projects.
type manifest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Template   string `json:"template,omitempty"`
	Frontend   string `json:"frontend,omitempty"`
	Backend    string `json:"backend,omitempty"`
	Database   string `json:"database,omitempty"`
	Deployment string `json:"deployment,omitempty"`
	License    string `json:"license,omitempty"`
	Author     string `json:"author,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

// sharedFiles generates the stack-independent project files.
func sharedFiles(spec *model.ProjectSpec) ([]File, error) {
	readme, err := render("README.md", readmeTemplate, spec)
	if err != nil {
		return nil, err
	}

	m := manifest{
		ID:         spec.ID,
		Name:       spec.Name,
		Template:   spec.Template,
		Frontend:   spec.Frontend.String(),
		Backend:    spec.Backend.String(),
		Database:   spec.Database.String(),
		Deployment: spec.Deployment.String(),
		License:    spec.License,
		Author:     spec.Author.Name,
		CreatedAt:  DateStamp(spec.CreatedAt),
	}
	manifestJSON, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("scaffold: marshal manifest: %w", err)
	}

	files := []File{
		{Path: "README.md", Content: readme},
		{Path: "stackforge.json", Content: append(manifestJSON, '\n')},
		{Path: ".editorconfig", Content: []byte(editorconfigBody)},
		{Path: ".gitignore", Content: []byte(GitignoreContent(spec))},
	}

	if spec.WithCI {
		ci, err := render("ci.yml", ciWorkflowTemplate, spec)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: ".github/workflows/ci.yml", Content: ci})
	}

	return files, nil
}
