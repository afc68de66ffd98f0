package deploy

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tessera-labs/stackforge/internal/model"
)

// serverlessConfig is the structure of the generated serverless.yml
// (Serverless Framework v3 layout).
type serverlessConfig struct {
	Service   string                        `yaml:"service"`
	Provider  serverlessProvider            `yaml:"provider"`
	Functions map[string]serverlessFunction `yaml:"functions"`
}

type serverlessProvider struct {
	Name    string `yaml:"name"`
	Runtime string `yaml:"runtime"`
	Region  string `yaml:"region"`
}

type serverlessFunction struct {
	Handler string            `yaml:"handler"`
	Events  []serverlessEvent `yaml:"events"`
}

type serverlessEvent struct {
	HTTPAPI serverlessHTTPAPI `yaml:"httpApi"`
}

type serverlessHTTPAPI struct {
	Path   string `yaml:"path"`
	Method string `yaml:"method"`
}

// renderServerless generates serverless.yml for the backend stack.
// Serverless deployment requires a backend: there is nothing to deploy
// for a frontend-only project.
func renderServerless(spec *model.ProjectSpec) ([]Manifest, error) {
	if spec.Backend == "" {
		return nil, fmt.Errorf("deploy: serverless deployment requires a backend")
	}

	runtime, handler, err := serverlessRuntime(spec.Backend)
	if err != nil {
		return nil, err
	}

	cfg := serverlessConfig{
		Service: spec.Name,
		Provider: serverlessProvider{
			Name:    "aws",
			Runtime: runtime,
			Region:  "us-east-1",
		},
		Functions: map[string]serverlessFunction{
			"api": {
				Handler: handler,
				Events: []serverlessEvent{{
					HTTPAPI: serverlessHTTPAPI{Path: "/{proxy+}", Method: "any"},
				}},
			},
		},
	}

	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("deploy: marshal serverless.yml: %w", err)
	}
	header := fmt.Sprintf("# Generated by stackforge for project %q.\n", spec.Name)

	return []Manifest{{Path: "serverless.yml", Content: append([]byte(header), body...)}}, nil
}

// serverlessRuntime maps a backend stack to its AWS Lambda runtime and
// default handler reference.
func serverlessRuntime(b model.Backend) (runtime, handler string, err error) {
	switch b {
	case model.BackendNode:
		return "nodejs20.x", "backend/src/handler.handler", nil
	case model.BackendPython:
		return "python3.12", "backend/app/handler.handler", nil
	case model.BackendDotnet:
		return "dotnet8", "backend::backend.Handler::Handle", nil
	case model.BackendJava:
		return "java21", "com.example.app.Handler::handleRequest", nil
	default:
		return "", "", fmt.Errorf("deploy: no serverless runtime for backend %q", b)
	}
}
