// Package model defines the domain types for the stackforge CLI.
//
// All entities in this package are pure data structures with no external
// dependencies. A ProjectSpec is assembled by the CLI layer (from flags,
// config defaults, a template preset, or the interactive flow) and then
// handed to the scaffold engine, which treats it as read-only.
package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Frontend identifies the frontend scaffold to generate.
// An empty value means the project has no frontend.
type Frontend string

const (
	FrontendReact   Frontend = "react"
	FrontendVue     Frontend = "vue"
	FrontendAngular Frontend = "angular"
	FrontendNextJS  Frontend = "nextjs"
)

// Frontends lists all valid frontend choices in display order.
// The CLI uses this for flag help text, the list command, and the
// interactive picker, so there is a single source of truth.
func Frontends() []Frontend {
	return []Frontend{FrontendReact, FrontendVue, FrontendAngular, FrontendNextJS}
}

// String returns the string representation of the Frontend.
func (f Frontend) String() string {
	return string(f)
}

// IsValid checks whether the Frontend value is one of the predefined
// choices. The empty value is valid and means "no frontend".
func (f Frontend) IsValid() bool {
	if f == "" {
		return true
	}
	for _, v := range Frontends() {
		if f == v {
			return true
		}
	}
	return false
}

// ParseFrontend converts a string to a Frontend.
// Returns an error if the string does not match any valid choice.
func ParseFrontend(s string) (Frontend, error) {
	f := Frontend(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frontend %q (valid: %s)", s, joinChoices(Frontends()))
	}
	return f, nil
}

// Backend identifies the backend scaffold to generate.
// An empty value means the project has no backend.
type Backend string

const (
	BackendNode   Backend = "node"
	BackendPython Backend = "python"
	BackendDotnet Backend = "dotnet"
	BackendJava   Backend = "java"
)

// Backends lists all valid backend choices in display order.
func Backends() []Backend {
	return []Backend{BackendNode, BackendPython, BackendDotnet, BackendJava}
}

// String returns the string representation of the Backend.
func (b Backend) String() string {
	return string(b)
}

// IsValid checks whether the Backend value is one of the predefined
// choices. The empty value is valid and means "no backend".
func (b Backend) IsValid() bool {
	if b == "" {
		return true
	}
	for _, v := range Backends() {
		if b == v {
			return true
		}
	}
	return false
}

// ParseBackend converts a string to a Backend.
// Returns an error if the string does not match any valid choice.
func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	if !b.IsValid() {
		return "", fmt.Errorf("invalid backend %q (valid: %s)", s, joinChoices(Backends()))
	}
	return b, nil
}

// Database identifies which database the generated .env and deployment
// manifests are written for. An empty value means no database.
type Database string

const (
	DatabasePostgres Database = "postgresql"
	DatabaseMySQL    Database = "mysql"
	DatabaseMongoDB  Database = "mongodb"
	DatabaseSQLite   Database = "sqlite"
)

// Databases lists all valid database choices in display order.
func Databases() []Database {
	return []Database{DatabasePostgres, DatabaseMySQL, DatabaseMongoDB, DatabaseSQLite}
}

// String returns the string representation of the Database.
func (d Database) String() string {
	return string(d)
}

// IsValid checks whether the Database value is one of the predefined
// choices. The empty value is valid and means "no database".
func (d Database) IsValid() bool {
	if d == "" {
		return true
	}
	for _, v := range Databases() {
		if d == v {
			return true
		}
	}
	return false
}

// ParseDatabase converts a string to a Database.
// Returns an error if the string does not match any valid choice.
func ParseDatabase(s string) (Database, error) {
	d := Database(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", fmt.Errorf("invalid database %q (valid: %s)", s, joinChoices(Databases()))
	}
	return d, nil
}

// Deployment identifies which deployment manifests to generate.
// An empty value means no deployment manifests.
type Deployment string

const (
	DeployDocker     Deployment = "docker"
	DeployKubernetes Deployment = "kubernetes"
	DeployServerless Deployment = "serverless"
)

// Deployments lists all valid deployment choices in display order.
func Deployments() []Deployment {
	return []Deployment{DeployDocker, DeployKubernetes, DeployServerless}
}

// String returns the string representation of the Deployment.
func (d Deployment) String() string {
	return string(d)
}

// IsValid checks whether the Deployment value is one of the predefined
// choices. The empty value is valid and means "no deployment target".
func (d Deployment) IsValid() bool {
	if d == "" {
		return true
	}
	for _, v := range Deployments() {
		if d == v {
			return true
		}
	}
	return false
}

// ParseDeployment converts a string to a Deployment.
// Returns an error if the string does not match any valid choice.
func ParseDeployment(s string) (Deployment, error) {
	d := Deployment(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", fmt.Errorf("invalid deployment %q (valid: %s)", s, joinChoices(Deployments()))
	}
	return d, nil
}

// UsesContainers returns true if the deployment target runs the project
// in containers. This controls whether docker-compose/kubernetes manifests
// are generated and whether the doctor-style daemon warning applies.
func (d Deployment) UsesContainers() bool {
	return d == DeployDocker || d == DeployKubernetes
}

// joinChoices renders a choice slice as "a, b, c" for error messages.
// It accepts any of the string-backed enum types above.
func joinChoices[T ~string](choices []T) string {
	parts := make([]string, 0, len(choices))
	for _, c := range choices {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ", ")
}

// Author identifies the person the scaffold is generated for.
// Populated from the config file or left empty; the email, when present,
// must pass ident.ValidateEmail before it reaches a ProjectSpec.
type Author struct {
	// Name is the display name written into generated README/LICENSE stubs.
	Name string `json:"name,omitempty"`

	// Email is written into generated package manifests.
	Email string `json:"email,omitempty"`
}

// ProjectSpec is the fully resolved description of a project to scaffold.
// This is the primary aggregate entity in the domain: the CLI layer builds
// it, the scaffold engine consumes it.
type ProjectSpec struct {
	// Name is the project directory name. Must pass ValidateName.
	Name string `json:"name"`

	// TargetPath is the absolute path of the directory to create.
	TargetPath string `json:"targetPath"`

	// Frontend selects the frontend scaffold. Empty means none.
	Frontend Frontend `json:"frontend,omitempty"`

	// Backend selects the backend scaffold. Empty means none.
	Backend Backend `json:"backend,omitempty"`

	// Database selects the .env template and deployment db service.
	// Empty means none.
	Database Database `json:"database,omitempty"`

	// Deployment selects which deployment manifests to generate.
	// Empty means none.
	Deployment Deployment `json:"deployment,omitempty"`

	// Template is the name of the preset bundle the spec was derived from.
	// Empty when the stack was chosen flag by flag.
	Template string `json:"template,omitempty"`

	// Author is written into generated manifests and docs.
	Author Author `json:"author,omitempty"`

	// License is the SPDX identifier written into generated manifests.
	License string `json:"license,omitempty"`

	// InitGit controls whether the target directory is initialized as a
	// Git repository with an initial commit.
	InitGit bool `json:"initGit"`

	// WithDocs controls whether the documentation skeleton (ADR template,
	// branching strategy, onboarding guide) is generated alongside the code.
	WithDocs bool `json:"withDocs"`

	// WithCI controls whether a GitHub Actions workflow stub is generated.
	WithCI bool `json:"withCI"`

	// ID is a unique identifier stamped into the generated project
	// manifest. Matches the pattern id_<digits>_<base36>.
	ID string `json:"id"`

	// CreatedAt is the timestamp when the scaffold was generated.
	CreatedAt time.Time `json:"createdAt"`
}

// HasStack reports whether the spec selects at least one of frontend or
// backend. A spec with neither would generate an empty shell, which the
// CLI rejects before planning.
func (s *ProjectSpec) HasStack() bool {
	return s.Frontend != "" || s.Backend != ""
}

// nameRegex validates project names: must start with a letter or digit,
// then letters, digits, hyphens, or underscores.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// maxNameLength bounds project names so they stay usable as directory
// names, npm package names, and Compose project names.
const maxNameLength = 64

// ValidateName checks if the given name is a valid project name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("project name %q exceeds %d characters", name, maxNameLength)
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must start with a letter or digit and contain only letters, digits, hyphens, and underscores", name)
	}
	return nil
}

// ExitCode defines the CLI exit codes. Exit code 1 covers the two failure
// modes the original flag contract promises (invalid flag value and
// pre-existing target directory); the remaining codes let scripts
// distinguish failure classes the text output already names.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an invalid flag value, a pre-existing
	// target directory, or an otherwise unspecified error.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates the .stackforge.jsonc config file or a
	// preset manifest could not be parsed.
	ExitConfigError ExitCode = 2

	// ExitDockerNotRunning indicates the Docker daemon is not accessible.
	// Only the doctor command fails with this code; init treats an
	// unreachable daemon as a warning.
	ExitDockerNotRunning ExitCode = 3

	// ExitWriteError indicates scaffold files could not be written.
	ExitWriteError ExitCode = 4

	// ExitGitError indicates a Git operation (init, initial commit) failed.
	ExitGitError ExitCode = 5

	// ExitUserCancelled indicates the user cancelled the interactive flow.
	ExitUserCancelled ExitCode = 7
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
