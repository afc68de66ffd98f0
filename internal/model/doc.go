// Package model defines the domain types and value objects for the
// stackforge CLI.
//
// This package contains pure data structures with no external dependencies.
// The stack enums (Frontend, Backend, Database, Deployment) follow a common
// shape: typed string constants, an ordered options list, String/IsValid
// methods, and a Parse function used by flag validation.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
