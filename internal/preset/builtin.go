package preset

// Builtin preset definitions. Each is a YAML document parsed through the
// same code path as user presets, so the builtins double as living
// examples of the preset file format.
const (
	saasYAML = `name: saas
description: Full-stack SaaS starter with auth-ready backend and Kubernetes deployment
frontend: nextjs
backend: node
database: postgresql
deployment: kubernetes
extras:
  docs: true
  ci: true
`

	ecommerceYAML = `name: ecommerce
description: Storefront with React frontend, Node backend, and Docker Compose stack
frontend: react
backend: node
database: postgresql
deployment: docker
extras:
  ci: true
`

	apiYAML = `name: api
description: Headless REST API service, no frontend
backend: node
database: postgresql
deployment: docker
extras:
  docs: true
`

	dashboardYAML = `name: dashboard
description: Internal analytics dashboard with Python backend
frontend: react
backend: python
database: postgresql
deployment: docker
`

	mobileYAML = `name: mobile
description: Mobile-first app shell with a serverless backend
frontend: react
backend: node
database: mongodb
deployment: serverless
`
)

// builtinYAML lists the builtin documents in display order.
var builtinYAML = []string{saasYAML, ecommerceYAML, apiYAML, dashboardYAML, mobileYAML}

// Builtins parses and returns all builtin presets. The builtin documents
// are covered by tests, so a malformed one is a programmer error; Parse
// failures here panic rather than surfacing an error every caller would
// have to ignore.
func Builtins() []Preset {
	presets := make([]Preset, 0, len(builtinYAML))
	for _, doc := range builtinYAML {
		p, err := Parse([]byte(doc))
		if err != nil {
			panic("preset: invalid builtin definition: " + err.Error())
		}
		p.Builtin = true
		presets = append(presets, p)
	}
	return presets
}
