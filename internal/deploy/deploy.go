// Package deploy generates deployment manifests for scaffolded projects.
//
// Three targets are supported: docker (Dockerfiles + a Compose file),
// kubernetes (Deployment/Service/ConfigMap manifests), and serverless
// (a Serverless Framework config). All YAML output is built from structs
// and serialized with gopkg.in/yaml.v3 rather than string templates, so
// the generated files are always syntactically valid YAML.
package deploy

import (
	"fmt"

	"github.com/tessera-labs/stackforge/internal/model"
)

// Manifest is a single generated deployment file with a path relative
// to the project root.
type Manifest struct {
	Path    string
	Content []byte
}

// Render produces all deployment manifests for the spec's deployment
// target. The spec must have a deployment set.
func Render(spec *model.ProjectSpec) ([]Manifest, error) {
	switch spec.Deployment {
	case model.DeployDocker:
		return renderDocker(spec)
	case model.DeployKubernetes:
		return renderKubernetes(spec)
	case model.DeployServerless:
		return renderServerless(spec)
	default:
		return nil, fmt.Errorf("deploy: no manifests for target %q", spec.Deployment)
	}
}

// backendPort returns the port the backend scaffold listens on.
// These match the defaults baked into the backend templates.
func backendPort(b model.Backend) int {
	switch b {
	case model.BackendNode:
		return 3000
	case model.BackendPython:
		return 8000
	default:
		// dotnet and java both default to 8080.
		return 8080
	}
}

// frontendPort returns the port the frontend dev server listens on.
func frontendPort(f model.Frontend) int {
	switch f {
	case model.FrontendNextJS:
		return 3000
	case model.FrontendAngular:
		return 4200
	default:
		// react and vue use the vite default.
		return 5173
	}
}

// databaseImage returns the container image for a database choice.
// SQLite is file-based and gets no service, signalled by an empty image.
func databaseImage(d model.Database) string {
	switch d {
	case model.DatabasePostgres:
		return "postgres:16-alpine"
	case model.DatabaseMySQL:
		return "mysql:8.4"
	case model.DatabaseMongoDB:
		return "mongo:7"
	default:
		return ""
	}
}

// databasePort returns the well-known port for a database choice.
func databasePort(d model.Database) int {
	switch d {
	case model.DatabasePostgres:
		return 5432
	case model.DatabaseMySQL:
		return 3306
	case model.DatabaseMongoDB:
		return 27017
	default:
		return 0
	}
}
