package deploy

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/tessera-labs/stackforge/internal/model"
)

// composeFile is the structure of the generated docker-compose.yml.
// The top-level name sets COMPOSE_PROJECT_NAME, which prefixes container,
// network, and volume names with the project name.
type composeFile struct {
	Name     string                    `yaml:"name"`
	Services map[string]composeService `yaml:"services"`
	Volumes  map[string]any            `yaml:"volumes,omitempty"`
}

// composeService is a single service entry. Only the fields the
// generated stacks need are modeled.
type composeService struct {
	Build       string            `yaml:"build,omitempty"`
	Image       string            `yaml:"image,omitempty"`
	Ports       []string          `yaml:"ports,omitempty"`
	EnvFile     []string          `yaml:"env_file,omitempty"`
	Environment map[string]string `yaml:"environment,omitempty"`
	DependsOn   []string          `yaml:"depends_on,omitempty"`
	Volumes     []string          `yaml:"volumes,omitempty"`
	Restart     string            `yaml:"restart,omitempty"`
}

// renderDocker generates per-stack Dockerfiles plus a Compose file that
// wires frontend, backend, and database together.
func renderDocker(spec *model.ProjectSpec) ([]Manifest, error) {
	var manifests []Manifest

	if spec.Backend != "" {
		df, err := backendDockerfile(spec.Backend)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, Manifest{Path: "backend/Dockerfile", Content: df})
	}
	if spec.Frontend != "" {
		manifests = append(manifests, Manifest{Path: "frontend/Dockerfile", Content: frontendDockerfile(spec.Frontend)})
	}

	composeYAML, err := composeContent(spec)
	if err != nil {
		return nil, err
	}
	manifests = append(manifests, Manifest{Path: "docker-compose.yml", Content: composeYAML})

	return manifests, nil
}

// composeContent builds and serializes the Compose file for the spec.
func composeContent(spec *model.ProjectSpec) ([]byte, error) {
	cf := composeFile{
		Name:     spec.Name,
		Services: make(map[string]composeService),
	}

	dbService := ""
	if img := databaseImage(spec.Database); img != "" {
		dbService = "db"
		port := databasePort(spec.Database)
		svc := composeService{
			Image:   img,
			Ports:   []string{fmt.Sprintf("%d:%d", port, port)},
			EnvFile: []string{".env"},
			Restart: "unless-stopped",
		}
		// Named volume keeps the data across container recreation.
		volumeName := "db-data"
		svc.Volumes = []string{volumeName + ":" + databaseDataPath(spec.Database)}
		cf.Volumes = map[string]any{volumeName: nil}
		cf.Services[dbService] = svc
	}

	if spec.Backend != "" {
		port := backendPort(spec.Backend)
		svc := composeService{
			Build:   "./backend",
			Ports:   []string{fmt.Sprintf("%d:%d", port, port)},
			EnvFile: []string{".env"},
			Restart: "unless-stopped",
		}
		if dbService != "" {
			svc.DependsOn = []string{dbService}
		}
		cf.Services["backend"] = svc
	}

	if spec.Frontend != "" {
		port := frontendPort(spec.Frontend)
		svc := composeService{
			Build: "./frontend",
			Ports: []string{fmt.Sprintf("%d:%d", port, port)},
		}
		if spec.Backend != "" {
			svc.DependsOn = []string{"backend"}
			svc.Environment = map[string]string{
				"API_URL": fmt.Sprintf("http://backend:%d", backendPort(spec.Backend)),
			}
		}
		cf.Services["frontend"] = svc
	}

	return marshalWithHeader(spec.Name, cf)
}

// databaseDataPath returns the in-container data directory for the
// database image, used as the named volume mount point.
func databaseDataPath(d model.Database) string {
	switch d {
	case model.DatabasePostgres:
		return "/var/lib/postgresql/data"
	case model.DatabaseMySQL:
		return "/var/lib/mysql"
	case model.DatabaseMongoDB:
		return "/data/db"
	default:
		return ""
	}
}

// marshalWithHeader serializes a YAML document with a generated-file
// header comment. yaml.v3 emits map keys in Go iteration order for
// plain maps, so the header also records the service list explicitly
// for diff-friendliness.
func marshalWithHeader(project string, doc any) ([]byte, error) {
	body, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("deploy: marshal yaml: %w", err)
	}
	header := fmt.Sprintf("# Generated by stackforge for project %q.\n# Edit freely; stackforge does not rewrite this file.\n", project)
	return append([]byte(header), body...), nil
}

// serviceNames returns the sorted service names of a compose file.
func serviceNames(cf composeFile) []string {
	names := make([]string, 0, len(cf.Services))
	for name := range cf.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
